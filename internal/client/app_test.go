// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
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

const testBaseURL = "http://localhost:3000"

type testApp struct {
	app    *App
	data   *mock.MockDataClient
	out    *bytes.Buffer
	errOut *bytes.Buffer
	cfg    *config.ClientConfig
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	t.Setenv("ADAPTER_BASE_URL", "")
	t.Setenv("CONFIG", "")

	ctrl := gomock.NewController(t)
	ta := &testApp{
		data:   mock.NewMockDataClient(ctrl),
		out:    new(bytes.Buffer),
		errOut: new(bytes.Buffer),
	}

	factory := func(cfg *config.ClientConfig) (adapter.DataClient, error) {
		ta.cfg = cfg
		return ta.data, nil
	}
	ta.app = NewApp(factory, models.NewAppBuildInfo("v1.2.3", "", "abc"), logger.Nop(), WithOutput(ta.out, ta.errOut))

	return ta
}

func (ta *testApp) run(args ...string) int {
	return ta.app.Execute(context.Background(), append([]string{"--base-url", testBaseURL}, args...))
}

func TestAccountGet(t *testing.T) {
	ta := newTestApp(t)
	ta.data.EXPECT().GetAccount(gomock.Any(), "ID100").
		Return(models.Account{ID: "ID100", Name: "house", Energy: 7}, nil)

	require.Equal(t, 0, ta.run("account", "get", "ID100"))
	assert.JSONEq(t, `{"id":"ID100","name":"house","balance":0,"energy":7}`, ta.out.String())
	assert.Empty(t, ta.errOut.String())
	assert.Equal(t, testBaseURL, ta.cfg.Adapter.BaseURL)
}

func TestAccountCreate(t *testing.T) {
	t.Run("payload argument", func(t *testing.T) {
		ta := newTestApp(t)
		ta.data.EXPECT().AddAccount(gomock.Any(), models.Account{ID: "ID101", Type: models.AccountTypeProsumer}).
			Return(models.ServerResponse(`{"id":"ID101"}`), nil)

		require.Equal(t, 0, ta.run("account", "create", `{"id":"ID101","type":"prosumer"}`))
		assert.JSONEq(t, `{"id":"ID101"}`, ta.out.String())
	})

	t.Run("payload file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "account.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"id":"ID000","type":"producer"}`), 0o600))

		ta := newTestApp(t)
		ta.data.EXPECT().AddAccount(gomock.Any(), models.Account{ID: "ID000", Type: models.AccountTypeProducer}).
			Return(models.ServerResponse(`{}`), nil)

		require.Equal(t, 0, ta.run("account", "create", "-f", path))
	})

	t.Run("missing payload", func(t *testing.T) {
		ta := newTestApp(t)

		assert.Equal(t, 1, ta.run("account", "create"))
		assert.Contains(t, ta.errOut.String(), "no JSON payload")
	})

	t.Run("malformed payload", func(t *testing.T) {
		ta := newTestApp(t)

		assert.Equal(t, 1, ta.run("account", "create", "{"))
		assert.Contains(t, ta.errOut.String(), "decode payload")
	})
}

func TestAccountUpdate(t *testing.T) {
	ta := newTestApp(t)

	ta.data.EXPECT().UpdateAccount(gomock.Any(), "ID100", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, u models.AccountUpdate) (models.ServerResponse, error) {
			require.NotNil(t, u.Energy)
			assert.EqualValues(t, 42, *u.Energy)
			assert.Nil(t, u.Name)
			return models.ServerResponse(`{"ok":true}`), nil
		})

	require.Equal(t, 0, ta.run("account", "update", "ID100", `{"energy":42}`))
	assert.JSONEq(t, `{"ok":true}`, ta.out.String())
}

func TestAccountDelete_EmptyResponse(t *testing.T) {
	ta := newTestApp(t)
	ta.data.EXPECT().DeleteAccount(gomock.Any(), "ID100").Return(nil, nil)

	require.Equal(t, 0, ta.run("account", "delete", "ID100"))
	assert.Equal(t, "null", strings.TrimSpace(ta.out.String()))
}

func TestTransact(t *testing.T) {
	ta := newTestApp(t)

	want := []models.Transaction{
		{Timestamp: "1", Consumer: "ID100", Producer: "ID101", Amount: 10},
		{Timestamp: "2", Consumer: "ID101", Producer: "ID000", Amount: 20},
	}
	ta.data.EXPECT().Transact(gomock.Any(), want).Return(models.ServerResponse(`{"accepted":2}`), nil)

	payload := `[{"timestamp":"1","consumer":"ID100","producer":"ID101","transaction":10},` +
		`{"timestamp":"2","consumer":"ID101","producer":"ID000","transaction":20}]`
	require.Equal(t, 0, ta.run("transact", payload))
	assert.JSONEq(t, `{"accepted":2}`, ta.out.String())
}

func TestHistoryAndSnapshot(t *testing.T) {
	ta := newTestApp(t)
	ta.data.EXPECT().GetHistory(gomock.Any(), "ID100").
		Return([]models.HistoryRecord{{"direction": "in"}}, nil)

	require.Equal(t, 0, ta.run("history", "ID100"))
	assert.JSONEq(t, `[{"direction":"in"}]`, ta.out.String())

	ta.out.Reset()
	ta.data.EXPECT().GetSnapshot(gomock.Any()).
		Return([]models.Transaction{{Timestamp: "5", Consumer: "ID100", Producer: "ID101", Amount: 12}}, nil)

	require.Equal(t, 0, ta.run("snapshot"))
	assert.JSONEq(t, `[{"timestamp":"5","consumer":"ID100","producer":"ID101","transaction":12}]`, ta.out.String())
}

func TestOverview(t *testing.T) {
	t.Run("combines account and history", func(t *testing.T) {
		ta := newTestApp(t)
		ta.data.EXPECT().GetAccount(gomock.Any(), "ID101").Return(models.Account{ID: "ID101"}, nil)
		ta.data.EXPECT().GetHistory(gomock.Any(), "ID101").Return([]models.HistoryRecord{}, nil)

		require.Equal(t, 0, ta.run("overview", "ID101"))
		assert.JSONEq(t, `{"account":{"id":"ID101","balance":0,"energy":0},"history":[]}`, ta.out.String())
	})

	t.Run("any failure fails the command", func(t *testing.T) {
		ta := newTestApp(t)
		ta.data.EXPECT().GetAccount(gomock.Any(), "ghost").Return(models.Account{}, errors.New("404 - Not Found"))
		ta.data.EXPECT().GetHistory(gomock.Any(), "ghost").Return(nil, nil)

		assert.Equal(t, 1, ta.run("overview", "ghost"))
		assert.Equal(t, "404 - Not Found\n", ta.errOut.String())
		assert.Empty(t, ta.out.String())
	})
}

func TestNormalizedErrorGoesToStderr(t *testing.T) {
	ta := newTestApp(t)
	ta.data.EXPECT().GetAccount(gomock.Any(), "ID100").Return(models.Account{}, errors.New("Server error"))

	assert.Equal(t, 1, ta.run("account", "get", "ID100"))
	assert.Equal(t, "Server error\n", ta.errOut.String())
	assert.Empty(t, ta.out.String())
}

func TestMissingBaseURL(t *testing.T) {
	ta := newTestApp(t)

	assert.Equal(t, 1, ta.app.Execute(context.Background(), []string{"account", "get", "ID100"}))
	assert.Contains(t, ta.errOut.String(), "load config")
}

func TestVersion_NeedsNoConfig(t *testing.T) {
	ta := newTestApp(t)

	require.Equal(t, 0, ta.app.Execute(context.Background(), []string{"version"}))
	assert.Equal(t, "Build version: v1.2.3\nBuild date: N/A\nBuild commit: abc\n", ta.out.String())
}

func TestArgumentValidation(t *testing.T) {
	ta := newTestApp(t)

	assert.Equal(t, 1, ta.run("account", "get"))
	assert.Equal(t, 1, ta.run("history", "a", "b"))
}
