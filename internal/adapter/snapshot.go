// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/prosumer-ledger-client/internal/logger"
	"github.com/MKhiriev/prosumer-ledger-client/models"
)

type snapshotPublisher struct {
	caller

	url string
}

// NewSnapshotPublisher returns a [SnapshotPublisher] posting to publishURL,
// or to [SnapshotURL] when publishURL is empty.
func NewSnapshotPublisher(publishURL string, transport Transport, logger *logger.Logger) SnapshotPublisher {
	if publishURL == "" {
		publishURL = SnapshotURL
	}

	return &snapshotPublisher{
		caller: caller{transport: transport, logger: logger},
		url:    publishURL,
	}
}

// PublishSnapshot implements [SnapshotPublisher].
func (p *snapshotPublisher) PublishSnapshot(ctx context.Context, transactions []models.Transaction) (models.ServerResponse, error) {
	log := p.callLogger("publish_snapshot")
	log.Info().Int("count", len(transactions)).Str("url", p.url).Msg("publish snapshot")

	var resp models.ServerResponse
	if err := p.call(ctx, log, http.MethodPost, p.url, transactions, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}
