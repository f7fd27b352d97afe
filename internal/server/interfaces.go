// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle of the backend server.
type Server interface {
	// RunServer serves requests until a stop signal arrives.
	RunServer()

	// Run serves requests until ctx is done, then shuts down gracefully.
	// It returns early with an error when the listener cannot be opened or
	// serving fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
