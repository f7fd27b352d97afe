// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/prosumer-ledger-client/internal/utils"
	"github.com/MKhiriev/prosumer-ledger-client/models"
)

type memoryLedger struct {
	mu       sync.RWMutex
	accounts map[string]models.Account
	history  map[string][]models.HistoryRecord
}

// NewMemoryLedger returns an empty in-memory [LedgerRepository]. It is safe
// for concurrent use.
func NewMemoryLedger() LedgerRepository {
	return &memoryLedger{
		accounts: make(map[string]models.Account),
		history:  make(map[string][]models.HistoryRecord),
	}
}

func (l *memoryLedger) GetAccount(_ context.Context, id string) (models.Account, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	account, ok := l.accounts[id]
	if !ok {
		return models.Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	return account, nil
}

func (l *memoryLedger) CreateAccount(_ context.Context, account models.Account) (models.Account, error) {
	if account.ID == "" {
		return models.Account{}, ErrEmptyAccountID
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.accounts[account.ID]; ok {
		return models.Account{}, fmt.Errorf("%w: %s", ErrAccountExists, account.ID)
	}

	l.accounts[account.ID] = account
	return account, nil
}

// UpdateAccount applies the non-nil fields of update. update.ID is ignored;
// the path id decides which account changes.
func (l *memoryLedger) UpdateAccount(_ context.Context, id string, update models.AccountUpdate) (models.Account, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	account, ok := l.accounts[id]
	if !ok {
		return models.Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}

	if update.Name != nil {
		account.Name = *update.Name
	}
	if update.Type != nil {
		account.Type = *update.Type
	}
	if update.Balance != nil {
		account.Balance = *update.Balance
	}
	if update.Energy != nil {
		account.Energy = *update.Energy
	}

	l.accounts[id] = account
	return account, nil
}

func (l *memoryLedger) DeleteAccount(_ context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.accounts[id]; !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}

	delete(l.accounts, id)
	delete(l.history, id)
	return nil
}

// ApplyTransactions moves energy from producer to consumer. Accounts of type
// producer (the sun) have an unlimited supply.
func (l *memoryLedger) ApplyTransactions(_ context.Context, transactions []models.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	// validate against a scratch copy so a failing batch changes nothing
	scratch := make(map[string]models.Account)
	lookup := func(id string) (models.Account, error) {
		if a, ok := scratch[id]; ok {
			return a, nil
		}
		a, ok := l.accounts[id]
		if !ok {
			return models.Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
		}
		return a, nil
	}

	for i, tx := range transactions {
		if tx.Amount <= 0 || tx.Consumer == tx.Producer {
			return fmt.Errorf("%w: #%d", ErrInvalidTransaction, i)
		}

		producer, err := lookup(tx.Producer)
		if err != nil {
			return err
		}
		consumer, err := lookup(tx.Consumer)
		if err != nil {
			return err
		}

		if producer.Type != models.AccountTypeProducer {
			if producer.Energy < float64(tx.Amount) {
				return fmt.Errorf("%w: %s holds %g, needs %d", ErrInsufficientEnergy, producer.ID, producer.Energy, tx.Amount)
			}
			producer.Energy -= float64(tx.Amount)
		}
		consumer.Energy += float64(tx.Amount)

		scratch[producer.ID] = producer
		scratch[consumer.ID] = consumer
	}

	for id, account := range scratch {
		l.accounts[id] = account
	}
	for _, tx := range transactions {
		txID := utils.NewCallID()
		l.history[tx.Producer] = append(l.history[tx.Producer], historyRecord(txID, tx, "out"))
		l.history[tx.Consumer] = append(l.history[tx.Consumer], historyRecord(txID, tx, "in"))
	}

	return nil
}

func (l *memoryLedger) GetHistory(_ context.Context, id string) ([]models.HistoryRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if _, ok := l.accounts[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}

	records := make([]models.HistoryRecord, len(l.history[id]))
	copy(records, l.history[id])
	return records, nil
}

func historyRecord(txID string, tx models.Transaction, direction string) models.HistoryRecord {
	return models.HistoryRecord{
		"transactionId": txID,
		"timestamp":     tx.Timestamp,
		"consumer":      tx.Consumer,
		"producer":      tx.Producer,
		"amount":        tx.Amount,
		"direction":     direction,
	}
}
