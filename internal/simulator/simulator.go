// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package simulator emulates the metering device that feeds the snapshot
// store with energy readings.
package simulator

import (
	"context"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/MKhiriev/prosumer-ledger-client/internal/adapter"
	"github.com/MKhiriev/prosumer-ledger-client/internal/config"
	"github.com/MKhiriev/prosumer-ledger-client/internal/logger"
	"github.com/MKhiriev/prosumer-ledger-client/models"
)

// Participants of the metered micro-grid.
const (
	SunID      = "ID000"
	ConsumerID = "ID100"
	ProsumerID = "ID101"
)

const (
	minReading = 10
	maxReading = 100
)

// pairs lists the possible energy movements as consumer/producer.
var pairs = [...][2]string{
	{ConsumerID, ProsumerID},
	{ProsumerID, SunID},
}

// Simulator generates meter readings and publishes them as one snapshot.
type Simulator struct {
	publisher adapter.SnapshotPublisher

	count    int
	interval time.Duration

	rand *rand.Rand
	now  func() time.Time

	logger *logger.Logger
}

// Option customizes a [Simulator] built by [New].
type Option func(*Simulator)

// WithRand replaces the random source used to pick pairs and values.
func WithRand(r *rand.Rand) Option {
	return func(s *Simulator) { s.rand = r }
}

// WithClock replaces the clock used to stamp readings.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) { s.now = now }
}

// New returns a Simulator taking cfg.Count readings cfg.Interval apart and
// publishing them through publisher.
func New(publisher adapter.SnapshotPublisher, cfg *config.SimulatorConfig, logger *logger.Logger, opts ...Option) *Simulator {
	s := &Simulator{
		publisher: publisher,
		count:     cfg.Count,
		interval:  cfg.Interval,
		rand:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reading produces one transaction stamped with the current time in
// milliseconds.
func (s *Simulator) Reading() models.Transaction {
	pair := pairs[s.rand.IntN(len(pairs))]

	return models.Transaction{
		Timestamp: strconv.FormatInt(s.now().UnixMilli(), 10),
		Consumer:  pair[0],
		Producer:  pair[1],
		Amount:    minReading + s.rand.Int64N(maxReading-minReading+1),
	}
}

// Collect generates count readings with interval between them. It does not
// wait after the last reading. It stops early and returns what it has when
// ctx is done.
func (s *Simulator) Collect(ctx context.Context) []models.Transaction {
	readings := make([]models.Transaction, 0, s.count)

	for i := 0; i < s.count; i++ {
		if i > 0 && s.interval > 0 {
			t := time.NewTimer(s.interval)
			select {
			case <-ctx.Done():
				t.Stop()
				return readings
			case <-t.C:
			}
		}

		reading := s.Reading()
		s.logger.Debug().Any("reading", reading).Msg("reading taken")
		readings = append(readings, reading)
	}

	return readings
}

// Run collects a batch of readings and publishes it in a single request.
// The error, if any, is an *adapter.NormalizedError.
func (s *Simulator) Run(ctx context.Context) (models.ServerResponse, error) {
	readings := s.Collect(ctx)
	if len(readings) == 0 {
		s.logger.Warn().Msg("no readings collected, nothing to publish")
		return nil, nil
	}

	resp, err := s.publisher.PublishSnapshot(ctx, readings)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("count", len(readings)).Msg("readings published")
	return resp, nil
}
