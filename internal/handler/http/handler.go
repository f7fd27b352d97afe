// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/prosumer-ledger-client/internal/logger"
	"github.com/MKhiriev/prosumer-ledger-client/internal/store"
)

type Handler struct {
	ledger store.LedgerRepository

	logger *logger.Logger
}

func NewHandler(ledger store.LedgerRepository, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		ledger: ledger,
		logger: logger,
	}
}
