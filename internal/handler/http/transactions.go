// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/prosumer-ledger-client/internal/logger"
	"github.com/MKhiriev/prosumer-ledger-client/models"
	"github.com/go-chi/chi/v5"
)

type transactResponse struct {
	Accepted int `json:"accepted"`
}

func (h *Handler) transact(w http.ResponseWriter, r *http.Request) {
	var transactions []models.Transaction
	if err := json.NewDecoder(r.Body).Decode(&transactions); err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction payload: "+err.Error())
		return
	}

	if err := h.ledger.ApplyTransactions(r.Context(), transactions); err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int("count", len(transactions)).Msg("transactions applied")
	writeJSON(w, http.StatusOK, transactResponse{Accepted: len(transactions)})
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.ledger.GetHistory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, records)
}
