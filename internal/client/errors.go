// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	errNoPayload = errors.New("no JSON payload given: pass it as an argument or with --file")
)
