// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/prosumer-ledger-client/internal/adapter"
	"github.com/MKhiriev/prosumer-ledger-client/internal/config"
	"github.com/MKhiriev/prosumer-ledger-client/internal/logger"
	"github.com/MKhiriev/prosumer-ledger-client/internal/mock"
	"github.com/MKhiriev/prosumer-ledger-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBaseURL = "http://ledger.local:3000"

func newMockedClient(t *testing.T) (adapter.DataClient, *mock.MockTransport) {
	t.Helper()
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)

	c, err := adapter.NewRemoteDataClient(config.ClientAdapter{BaseURL: testBaseURL}, transport, logger.Nop())
	require.NoError(t, err)
	return c, transport
}

func TestRemoteDataClient_Routes(t *testing.T) {
	ctx := context.Background()
	account := models.Account{ID: "ID100"}
	update := models.AccountUpdate{ID: "ID100"}
	txs := []models.Transaction{{Consumer: "ID100", Producer: "ID101", Amount: 1}}

	tests := []struct {
		name   string
		method string
		url    string
		body   any
		call   func(c adapter.DataClient) error
	}{
		{
			name: "GetAccount", method: http.MethodGet, url: testBaseURL + "/api/Account/ID100",
			call: func(c adapter.DataClient) error { _, err := c.GetAccount(ctx, "ID100"); return err },
		},
		{
			name: "AddAccount", method: http.MethodPost, url: testBaseURL + "/api/create", body: account,
			call: func(c adapter.DataClient) error { _, err := c.AddAccount(ctx, account); return err },
		},
		{
			name: "UpdateAccount", method: http.MethodPut, url: testBaseURL + "/api/Account/ID100", body: update,
			call: func(c adapter.DataClient) error { _, err := c.UpdateAccount(ctx, "ID100", update); return err },
		},
		{
			name: "DeleteAccount", method: http.MethodDelete, url: testBaseURL + "/api/abc",
			call: func(c adapter.DataClient) error { _, err := c.DeleteAccount(ctx, "abc"); return err },
		},
		{
			name: "Transact", method: http.MethodPost, url: testBaseURL + "/api/Transaction", body: txs,
			call: func(c adapter.DataClient) error { _, err := c.Transact(ctx, txs); return err },
		},
		{
			name: "GetHistory", method: http.MethodGet, url: testBaseURL + "/api/History/ID100",
			call: func(c adapter.DataClient) error { _, err := c.GetHistory(ctx, "ID100"); return err },
		},
		{
			name: "GetSnapshot", method: http.MethodGet, url: adapter.SnapshotURL,
			call: func(c adapter.DataClient) error { _, err := c.GetSnapshot(ctx); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, transport := newMockedClient(t)

			transport.EXPECT().
				Do(gomock.Any(), tt.method, tt.url, gomock.Eq(tt.body)).
				Return(adapter.Response{Status: http.StatusOK}, nil).
				Times(1)

			require.NoError(t, tt.call(c))
		})
	}
}

func TestRemoteDataClient_IDIsPathEscaped(t *testing.T) {
	c, transport := newMockedClient(t)

	transport.EXPECT().
		Do(gomock.Any(), http.MethodGet, testBaseURL+"/api/History/a%2Fb%20c", nil).
		Return(adapter.Response{Status: http.StatusOK, Body: []byte(`[]`)}, nil)

	got, err := c.GetHistory(context.Background(), "a/b c")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestRemoteDataClient_OnlyNormalizedErrorsEscape verifies that no failure
// class reaches the caller in any shape other than *NormalizedError.
func TestRemoteDataClient_OnlyNormalizedErrorsEscape(t *testing.T) {
	tests := []struct {
		name    string
		failure error
		want    string
	}{
		{name: "transport", failure: adapter.NewTransportFailure("dial tcp: lookup ledger.local: no such host"), want: "dial tcp: lookup ledger.local: no such host"},
		{name: "server 404", failure: adapter.NewServerFailure(404, "Not Found", nil), want: "404 - Not Found"},
		{name: "server with message", failure: adapter.NewServerFailure(422, "Unprocessable Entity", []byte(`{"error":{"message":"insufficient energy"}}`)), want: "insufficient energy"},
		{name: "bare failure", failure: &adapter.Failure{}, want: "Server error"},
		{name: "foreign error", failure: errors.New("socket closed"), want: "socket closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, transport := newMockedClient(t)
			transport.EXPECT().Do(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(adapter.Response{}, tt.failure)

			_, err := c.Transact(context.Background(), nil)

			var nerr *adapter.NormalizedError
			require.ErrorAs(t, err, &nerr)
			assert.Equal(t, tt.want, nerr.Message())

			var f *adapter.Failure
			assert.False(t, errors.As(err, &f), "underlying failure must not be reachable")
		})
	}
}

// TestRemoteDataClient_FailureDoesNotAffectNextCall verifies that calls are
// independent.
func TestRemoteDataClient_FailureDoesNotAffectNextCall(t *testing.T) {
	c, transport := newMockedClient(t)
	gomock.InOrder(
		transport.EXPECT().Do(gomock.Any(), http.MethodGet, testBaseURL+"/api/Account/1", nil).
			Return(adapter.Response{}, adapter.NewTransportFailure("connection reset by peer")),
		transport.EXPECT().Do(gomock.Any(), http.MethodGet, testBaseURL+"/api/Account/1", nil).
			Return(adapter.Response{Status: http.StatusOK, Body: []byte(`{"id":"1","energy":3}`)}, nil),
	)

	_, err := c.GetAccount(context.Background(), "1")
	require.EqualError(t, err, "connection reset by peer")

	got, err := c.GetAccount(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, models.Account{ID: "1", Energy: 3}, got)
}

func TestSnapshotPublisher_UsesTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	txs := []models.Transaction{{Timestamp: "1", Consumer: "ID100", Producer: "ID101", Amount: 50}}

	transport.EXPECT().
		Do(gomock.Any(), http.MethodPost, adapter.SnapshotURL, txs).
		Return(adapter.Response{}, adapter.NewServerFailure(503, "Service Unavailable", nil))

	p := adapter.NewSnapshotPublisher("", transport, logger.Nop())
	_, err := p.PublishSnapshot(context.Background(), txs)

	assert.EqualError(t, err, "503 - Service Unavailable")
}
