// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/prosumer-ledger-client/internal/config"
	"github.com/MKhiriev/prosumer-ledger-client/internal/logger"
	"github.com/MKhiriev/prosumer-ledger-client/models"
)

// SnapshotURL is the external store the metering devices publish their
// readings to. It does not depend on the configured base URL.
const SnapshotURL = "https://api.myjson.com/bins/1g3idq"

type remoteDataClient struct {
	caller

	actionURL   string
	snapshotURL string
}

// NewRemoteDataClient constructs the HTTP implementation of [DataClient].
// Every backend path is composed under cfg.BaseURL + "/api". A base URL
// without a scheme is taken as plain http ("localhost:3000" becomes
// "http://localhost:3000"), and trailing slashes are dropped.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewRemoteDataClient(cfg config.ClientAdapter, transport Transport, logger *logger.Logger) (DataClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	logger.Info().Str("base_url", baseURL).Msg("remote data client created")

	return &remoteDataClient{
		caller:      caller{transport: transport, logger: logger},
		actionURL:   baseURL + "/api",
		snapshotURL: SnapshotURL,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetAccount implements [DataClient].
func (c *remoteDataClient) GetAccount(ctx context.Context, id string) (models.Account, error) {
	log := c.callLogger("get_account")
	log.Info().Str("id", id).Msg("read account")

	var account models.Account
	if err := c.call(ctx, log, http.MethodGet, c.path("Account", id), nil, &account); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// AddAccount implements [DataClient].
func (c *remoteDataClient) AddAccount(ctx context.Context, account models.Account) (models.ServerResponse, error) {
	log := c.callLogger("add_account")
	log.Info().Any("account", account).Msg("create account")

	var resp models.ServerResponse
	if err := c.call(ctx, log, http.MethodPost, c.path("create"), account, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// UpdateAccount implements [DataClient].
func (c *remoteDataClient) UpdateAccount(ctx context.Context, id string, update models.AccountUpdate) (models.ServerResponse, error) {
	log := c.callLogger("update_account")
	log.Info().Str("id", id).Any("update", update).Msg("update account")

	var resp models.ServerResponse
	if err := c.call(ctx, log, http.MethodPut, c.path("Account", id), update, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// DeleteAccount implements [DataClient].
func (c *remoteDataClient) DeleteAccount(ctx context.Context, id string) (models.ServerResponse, error) {
	log := c.callLogger("delete_account")
	log.Info().Str("id", id).Msg("delete account")

	var resp models.ServerResponse
	if err := c.call(ctx, log, http.MethodDelete, c.path(id), nil, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// Transact implements [DataClient].
func (c *remoteDataClient) Transact(ctx context.Context, transactions []models.Transaction) (models.ServerResponse, error) {
	log := c.callLogger("transact")
	log.Info().Any("transactions", transactions).Msg("transact")

	var resp models.ServerResponse
	if err := c.call(ctx, log, http.MethodPost, c.path("Transaction"), transactions, &resp); err != nil {
		return nil, err
	}

	return resp, nil
}

// GetHistory implements [DataClient].
func (c *remoteDataClient) GetHistory(ctx context.Context, id string) ([]models.HistoryRecord, error) {
	log := c.callLogger("get_history")
	log.Info().Str("id", id).Msg("history")

	var records []models.HistoryRecord
	if err := c.call(ctx, log, http.MethodGet, c.path("History", id), nil, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// GetSnapshot implements [DataClient].
func (c *remoteDataClient) GetSnapshot(ctx context.Context) ([]models.Transaction, error) {
	log := c.callLogger("get_snapshot")
	log.Info().Str("url", c.snapshotURL).Msg("read snapshot")

	var transactions []models.Transaction
	if err := c.call(ctx, log, http.MethodGet, c.snapshotURL, nil, &transactions); err != nil {
		return nil, err
	}

	return transactions, nil
}

// path joins segments under {base}/api. Each segment is escaped so an id
// always occupies exactly one path segment.
func (c *remoteDataClient) path(segments ...string) string {
	var b strings.Builder
	b.WriteString(c.actionURL)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}
