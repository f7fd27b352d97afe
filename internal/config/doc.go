// Package config loads, merges and validates configuration for the ledger
// binaries.
//
// Values come from three sources. A JSON file, when one is named, forms the
// base layer; environment variables override it, and command-line flags
// override both.
//
// Each binary reads its own view: [GetClientConfig] for the CLI,
// [GetSimulatorConfig] for the metering simulator and [GetStubServerConfig]
// for the development backend.
package config
