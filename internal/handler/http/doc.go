// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http serves the ledger backend routes over an in-memory store.
//
// The routes mirror the ones the data client calls, including the
// asymmetric delete route (DELETE /api/{id}). Error bodies use the
// {"error":{"statusCode":N,"name":"Error","message":"..."}} shape.
package http
