// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/prosumer-ledger-client/internal/adapter"
	"github.com/MKhiriev/prosumer-ledger-client/internal/config"
)

// Client defines the lifecycle of a runnable command-line application.
type Client interface {
	// Execute runs the command named by args and returns the process exit
	// code.
	Execute(ctx context.Context, args []string) int
}

// DataClientFactory builds the data client once the configuration is known.
type DataClientFactory func(cfg *config.ClientConfig) (adapter.DataClient, error)
