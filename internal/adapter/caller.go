// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/prosumer-ledger-client/internal/logger"
	"github.com/MKhiriev/prosumer-ledger-client/internal/utils"
)

// caller runs one request through the transport and applies the decoding
// and normalization rules shared by every operation.
type caller struct {
	transport Transport
	logger    *logger.Logger
}

// callLogger returns a logger tagged with the operation name and a fresh
// call id.
func (c caller) callLogger(op string) *logger.Logger {
	return c.logger.
		WithField("op", op).
		WithField("call_id", utils.NewCallID())
}

// call sends body to url and decodes the response into out when out is
// non-nil. An empty body leaves out untouched.
func (c caller) call(ctx context.Context, log *logger.Logger, method, url string, body, out any) error {
	log.Debug().Str("method", method).Str("url", url).Msg("sending request")

	resp, err := c.transport.Do(ctx, method, url, body)
	if err != nil {
		return normalize(log, err)
	}

	if out == nil || len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}

	if err = json.Unmarshal(resp.Body, out); err != nil {
		return normalize(log, &Failure{
			Kind:       ServerFailure,
			Message:    fmt.Sprintf("decode response from %s: %v", url, err),
			Status:     resp.Status,
			StatusText: resp.StatusText,
			Body:       resp.Body,
		})
	}

	return nil
}
