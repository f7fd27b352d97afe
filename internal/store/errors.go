// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [LedgerRepository] implementations. Callers
// should match them with [errors.Is].
var (
	// ErrAccountNotFound is returned when an operation targets an unknown id.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrAccountExists is returned when creating an account whose id is
	// already taken.
	ErrAccountExists = errors.New("account already exists")

	// ErrEmptyAccountID is returned when an account without id is created.
	ErrEmptyAccountID = errors.New("account id is empty")

	// ErrInvalidTransaction is returned when a transaction has a
	// non-positive amount or names the same account on both sides.
	ErrInvalidTransaction = errors.New("invalid transaction")

	// ErrInsufficientEnergy is returned when a producer does not hold the
	// energy it is asked to supply.
	ErrInsufficientEnergy = errors.New("insufficient energy")
)
