// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ServerResponse is a response body whose shape the backend does not
// document. It is handed to the caller untouched; an empty body yields a nil
// ServerResponse.
type ServerResponse = json.RawMessage

// HistoryRecord is a single entry of an account history. The backend does
// not constrain its shape.
type HistoryRecord map[string]any
