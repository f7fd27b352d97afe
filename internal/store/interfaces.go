// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store holds the state of the development backend.
package store

import (
	"context"

	"github.com/MKhiriev/prosumer-ledger-client/models"
)

// LedgerRepository stores accounts and applies transactions to them.
type LedgerRepository interface {
	GetAccount(ctx context.Context, id string) (models.Account, error)
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	UpdateAccount(ctx context.Context, id string, update models.AccountUpdate) (models.Account, error)
	DeleteAccount(ctx context.Context, id string) error

	// ApplyTransactions validates the whole batch before changing anything;
	// either every transaction is applied or none is.
	ApplyTransactions(ctx context.Context, transactions []models.Transaction) error

	GetHistory(ctx context.Context, id string) ([]models.HistoryRecord, error)
}
