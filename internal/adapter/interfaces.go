// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client-side data-access layer for the energy ledger
// backend.
//
// [DataClient] turns the ledger operations into HTTP calls composed under a
// configured base URL, plus one call against a fixed external snapshot
// store. Requests go through an injected [Transport], which reports every
// failure as a [*Failure]: either a transport failure (no response) or a
// server failure (non-2xx response).
//
// Before control returns to the caller every failure is logged and
// collapsed into a [*NormalizedError] that carries a single message. Callers
// never see status codes or the underlying error.
package adapter

import (
	"context"

	"github.com/MKhiriev/prosumer-ledger-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Transport issues one HTTP request and returns the decoded-ready response.
//
// A nil error means a 2xx response. Any other outcome is reported as a
// [*Failure]. Implementations must be safe for concurrent use.
type Transport interface {
	// Do sends body (JSON-encoded when non-nil) to url with the given method.
	Do(ctx context.Context, method, url string, body any) (Response, error)
}

// DataClient is the typed view of the ledger backend. Every method returns
// either its result or a [*NormalizedError]; nothing else. Methods are safe
// for concurrent use and share no mutable state.
//
// Ids are not validated. Each id is path-escaped with url.PathEscape before
// it is placed in {id}, so "a/b" is sent as "a%2Fb" and always occupies one
// path segment.
type DataClient interface {
	// GetAccount reads the account with the given id from
	// GET {base}/api/Account/{id}.
	GetAccount(ctx context.Context, id string) (models.Account, error)

	// AddAccount creates account through POST {base}/api/create and returns
	// the raw server response.
	AddAccount(ctx context.Context, account models.Account) (models.ServerResponse, error)

	// UpdateAccount sends update to PUT {base}/api/Account/{id}. The id in
	// the path and update.ID are not cross-checked.
	UpdateAccount(ctx context.Context, id string, update models.AccountUpdate) (models.ServerResponse, error)

	// DeleteAccount removes the account through DELETE {base}/api/{id}.
	// The path has no "Account" segment; that is the route the backend
	// exposes.
	DeleteAccount(ctx context.Context, id string) (models.ServerResponse, error)

	// Transact posts transactions as one ordered JSON array to
	// POST {base}/api/Transaction.
	Transact(ctx context.Context, transactions []models.Transaction) (models.ServerResponse, error)

	// GetHistory reads the history records of id from
	// GET {base}/api/History/{id}.
	GetHistory(ctx context.Context, id string) ([]models.HistoryRecord, error)

	// GetSnapshot reads the transaction snapshot from the fixed external
	// store at [SnapshotURL], independent of the base URL.
	GetSnapshot(ctx context.Context) ([]models.Transaction, error)
}

// SnapshotPublisher writes transaction snapshots to an external store. It is
// the feeding side of [DataClient.GetSnapshot].
type SnapshotPublisher interface {
	// PublishSnapshot posts transactions as one JSON array.
	PublishSnapshot(ctx context.Context, transactions []models.Transaction) (models.ServerResponse, error)
}
