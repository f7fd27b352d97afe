// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Equal(t, "Build version: N/A\nBuild date: 2026-01-01\nBuild commit: N/A\n", info.String())
}

func TestTransaction_WireNames(t *testing.T) {
	raw, err := json.Marshal(Transaction{Timestamp: "1700000000000", Consumer: "ID100", Producer: "ID101", Amount: 42})
	require.NoError(t, err)

	assert.JSONEq(t, `{"timestamp":"1700000000000","consumer":"ID100","producer":"ID101","transaction":42}`, string(raw))
}

func TestAccountUpdate_OmitsNilFields(t *testing.T) {
	name := "roof panels"
	raw, err := json.Marshal(AccountUpdate{Name: &name})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"roof panels"}`, string(raw))
}

func TestAccount_ExtraFieldsRoundTrip(t *testing.T) {
	var a Account
	require.NoError(t, json.Unmarshal([]byte(`{"id":"ID100","type":"consumer","energy":0.25,"owner":"bob","tags":["roof"]}`), &a))

	assert.Equal(t, "ID100", a.ID)
	assert.Equal(t, AccountTypeConsumer, a.Type)
	assert.Equal(t, 0.25, a.Energy)
	require.Len(t, a.Extra, 2)
	assert.NotContains(t, a.Extra, "id")

	raw, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"ID100","type":"consumer","balance":0,"energy":0.25,"owner":"bob","tags":["roof"]}`, string(raw))
}

func TestAccount_NoExtraFields(t *testing.T) {
	var a Account
	require.NoError(t, json.Unmarshal([]byte(`{"id":"ID101","balance":3}`), &a))
	assert.Nil(t, a.Extra)

	// typed fields win over a colliding Extra key
	a.Extra = map[string]json.RawMessage{"id": json.RawMessage(`"shadow"`)}
	raw, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"ID101","balance":3,"energy":0}`, string(raw))
}
