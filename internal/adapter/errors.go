// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

// genericServerError is reported when a failure has neither a message nor a
// status.
const genericServerError = "Server error"

// NormalizedError is the only error [DataClient] and [SnapshotPublisher]
// return. It holds a single human-readable message.
type NormalizedError struct {
	msg string
}

func (e *NormalizedError) Error() string {
	return e.msg
}

// Message returns the normalized text.
func (e *NormalizedError) Message() string {
	return e.msg
}
