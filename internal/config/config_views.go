// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

const (
	defaultSimulatorCount    = 1
	defaultSimulatorInterval = 200 * time.Millisecond
	defaultStubAddress       = "localhost:3000"
)

// ClientConfig is the configuration view of the ledger CLI.
type ClientConfig struct {
	Adapter ClientAdapter
}

// ClientAdapter is the only option the data client recognises.
type ClientAdapter struct {
	// BaseURL seeds the primary endpoint prefix.
	BaseURL string
}

// SimulatorConfig is the configuration view of the metering simulator.
type SimulatorConfig struct {
	PublishURL string
	Count      int
	Interval   time.Duration
}

// StubServerConfig is the configuration view of the development backend.
type StubServerConfig struct {
	Address string
}

// GetClientConfig builds and validates the CLI view.
func GetClientConfig(flags *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: cfg.Adapter.BaseURL},
	}

	return clientCfg, clientCfg.validate()
}

// GetSimulatorConfig builds and validates the simulator view. Count and
// Interval fall back to one reading and 200ms.
func GetSimulatorConfig(flags *StructuredConfig) (*SimulatorConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	simCfg := &SimulatorConfig{
		PublishURL: cfg.Simulator.PublishURL,
		Count:      cfg.Simulator.Count,
		Interval:   cfg.Simulator.Interval,
	}
	if simCfg.Count == 0 {
		simCfg.Count = defaultSimulatorCount
	}
	if simCfg.Interval == 0 {
		simCfg.Interval = defaultSimulatorInterval
	}

	return simCfg, simCfg.validate()
}

// GetStubServerConfig builds and validates the stub backend view.
func GetStubServerConfig(flags *StructuredConfig) (*StubServerConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := &StubServerConfig{Address: cfg.StubServer.Address}
	if stubCfg.Address == "" {
		stubCfg.Address = defaultStubAddress
	}

	return stubCfg, stubCfg.validate()
}
