// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the ledger command-line front-end.
//
// The command tree is built with cobra. Each command maps to one
// [adapter.DataClient] operation; results are printed to stdout as indented
// JSON and a failed call prints its normalized message to stderr.
package client
