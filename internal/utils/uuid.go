// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the adapter and the stub
// backend: the resty client constructor and id generation.
package utils

import "github.com/google/uuid"

// NewCallID returns a time-ordered UUIDv7 used to correlate the log lines of
// one call. It falls back to a random UUIDv4 if the v7 generator fails.
func NewCallID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
