// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Transaction is one movement of energy from a producer to a consumer.
type Transaction struct {
	// Timestamp is the reading time in Unix milliseconds, encoded as a
	// decimal string.
	Timestamp string `json:"timestamp"`

	// Consumer is the id of the receiving account.
	Consumer string `json:"consumer"`

	// Producer is the id of the supplying account.
	Producer string `json:"producer"`

	// Amount is the number of energy units moved.
	Amount int64 `json:"transaction"`
}
