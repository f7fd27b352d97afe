// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by the configuration views.
var (
	// ErrInvalidAdapterConfigs indicates a missing or non-absolute base URL.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSimulatorConfigs indicates a non-positive reading count, a
	// negative interval or a malformed publish URL.
	ErrInvalidSimulatorConfigs = errors.New("invalid simulator configuration")
	// ErrInvalidStubServerConfigs indicates a missing listen address.
	ErrInvalidStubServerConfigs = errors.New("invalid stub server configuration")
)
