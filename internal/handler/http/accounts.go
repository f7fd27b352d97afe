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

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.ledger.GetAccount(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, account)
}

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	var account models.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		writeError(w, http.StatusBadRequest, "invalid account payload: "+err.Error())
		return
	}

	created, err := h.ledger.CreateAccount(r.Context(), account)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("id", created.ID).Msg("account created")
	writeJSON(w, http.StatusOK, created)
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	var update models.AccountUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeError(w, http.StatusBadRequest, "invalid account payload: "+err.Error())
		return
	}

	updated, err := h.ledger.UpdateAccount(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.ledger.DeleteAccount(r.Context(), id); err != nil {
		h.writeStoreError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("id", id).Msg("account deleted")
	w.WriteHeader(http.StatusNoContent)
}
