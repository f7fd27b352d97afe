// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/prosumer-ledger-client/internal/logger"
)

// normalize logs the failure and collapses it into a [*NormalizedError].
//
// The message of the failure wins when it is non-empty; otherwise a status
// yields "{status} - {statusText}"; otherwise the text is "Server error".
func normalize(log *logger.Logger, err error) *NormalizedError {
	var f *Failure
	if !errors.As(err, &f) {
		f = NewTransportFailure(err.Error())
	}

	switch f.Kind {
	case ServerFailure:
		log.Error().
			Int("status", f.Status).
			Str("body", string(f.Body)).
			Msgf("backend returned code %d", f.Status)
	default:
		log.Error().Str("error", f.Message).Msg("an error occurred")
	}

	switch {
	case f.Message != "":
		return &NormalizedError{msg: f.Message}
	case f.Status != 0:
		return &NormalizedError{msg: fmt.Sprintf("%d - %s", f.Status, f.StatusText)}
	default:
		return &NormalizedError{msg: genericServerError}
	}
}
