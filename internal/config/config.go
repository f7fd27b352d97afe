// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging the JSON file, environment variables and flags.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the settings of the backend data client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Simulator holds the settings of the metering simulator.
	Simulator Simulator `envPrefix:"SIMULATOR_"`

	// StubServer holds the settings of the in-memory development backend.
	StubServer StubServer `envPrefix:"STUB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the backend data client settings.
type Adapter struct {
	// BaseURL is the address prefix under which every backend path is
	// composed (e.g. "http://localhost:3000").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`
}

// Simulator holds the metering simulator settings.
type Simulator struct {
	// PublishURL is the snapshot store the readings are posted to. Empty
	// means the data client's fixed snapshot endpoint.
	// Env: SIMULATOR_PUBLISH_URL
	PublishURL string `env:"PUBLISH_URL"`

	// Count is the number of readings generated per run.
	// Env: SIMULATOR_COUNT
	Count int `env:"COUNT"`

	// Interval is the pause between two readings (e.g. "200ms").
	// Env: SIMULATOR_INTERVAL
	Interval time.Duration `env:"INTERVAL"`
}

// StubServer holds the development backend settings.
type StubServer struct {
	// Address is the TCP address the stub backend listens on, in
	// "host:port" format.
	// Env: STUB_ADDRESS
	Address string `env:"ADDRESS"`
}

// GetStructuredConfig loads and merges configuration from every source.
// flags carries the values set on the command line; it may be nil.
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
