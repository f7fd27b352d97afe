// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// AccountType distinguishes grid participants. The backend treats it as a
// free-form label; the known values are listed below.
type AccountType string

const (
	AccountTypeConsumer AccountType = "consumer"
	AccountTypeProsumer AccountType = "prosumer"
	AccountTypeProducer AccountType = "producer"
)

// Account is a participant record owned by the backend.
//
// The client never caches or mutates accounts; it only carries them between
// the caller and the backend. Fields the backend sends beyond the typed ones
// are kept in Extra and written back unchanged.
type Account struct {
	// ID is the opaque backend identifier (e.g. "ID100").
	ID string `json:"id"`

	// Name is a human-readable label for the participant.
	Name string `json:"name,omitempty"`

	// Type is the participant kind.
	Type AccountType `json:"type,omitempty"`

	// Balance is the coin balance held by the account.
	Balance float64 `json:"balance"`

	// Energy is the energy balance held by the account.
	Energy float64 `json:"energy"`

	// Extra holds every other top-level field, keyed by its JSON name.
	Extra map[string]json.RawMessage `json:"-"`
}

// accountFields is Account without its JSON methods.
type accountFields Account

var knownAccountKeys = [...]string{"id", "name", "type", "balance", "energy"}

// UnmarshalJSON decodes the typed fields and collects the rest into Extra.
func (a *Account) UnmarshalJSON(data []byte) error {
	var fields accountFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, k := range knownAccountKeys {
		delete(all, k)
	}

	fields.Extra = nil
	if len(all) > 0 {
		fields.Extra = all
	}

	*a = Account(fields)
	return nil
}

// MarshalJSON writes the typed fields plus Extra. A typed field wins over an
// Extra entry with the same key.
func (a Account) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(accountFields(a))
	if err != nil || len(a.Extra) == 0 {
		return raw, err
	}

	var all map[string]json.RawMessage
	if err = json.Unmarshal(raw, &all); err != nil {
		return nil, err
	}
	for k, v := range a.Extra {
		if _, ok := all[k]; !ok {
			all[k] = v
		}
	}

	return json.Marshal(all)
}

// AccountUpdate is the payload of an update request. Nil fields are omitted
// from the wire so the backend may treat the update as partial.
//
// ID travels in the body as-is and is not cross-checked against the id in
// the request path.
type AccountUpdate struct {
	ID      string       `json:"id,omitempty"`
	Name    *string      `json:"name,omitempty"`
	Type    *AccountType `json:"type,omitempty"`
	Balance *float64     `json:"balance,omitempty"`
	Energy  *float64     `json:"energy,omitempty"`
}
