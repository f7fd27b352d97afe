// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// FailureKind tells the two failure classes apart.
type FailureKind int

const (
	// TransportFailure means no response was received (connection refused,
	// DNS failure, broken connection, unencodable request body).
	TransportFailure FailureKind = iota + 1
	// ServerFailure means a response was received but it reports failure,
	// or its body could not be decoded.
	ServerFailure
)

func (k FailureKind) String() string {
	switch k {
	case TransportFailure:
		return "transport"
	case ServerFailure:
		return "server"
	default:
		return "unknown"
	}
}

// Failure is the error a [Transport] reports. Only the fields relevant to
// Kind are set.
type Failure struct {
	Kind FailureKind

	// Message is the low-level error text for transport failures, or the
	// message carried in a server error body. It may be empty.
	Message string

	// Status, StatusText and Body describe the response of a server failure.
	Status     int
	StatusText string
	Body       []byte
}

// NewTransportFailure reports a request that produced no response.
func NewTransportFailure(message string) *Failure {
	return &Failure{Kind: TransportFailure, Message: message}
}

// NewServerFailure reports an unsuccessful response. The message is taken
// from the body when it is a JSON object with an "error.message" or
// "message" string.
func NewServerFailure(status int, statusText string, body []byte) *Failure {
	return &Failure{
		Kind:       ServerFailure,
		Message:    bodyMessage(body),
		Status:     status,
		StatusText: statusText,
		Body:       body,
	}
}

func (f *Failure) Error() string {
	if f.Kind == ServerFailure {
		return fmt.Sprintf("%s failure: %d %s: %s", f.Kind, f.Status, f.StatusText, f.Message)
	}
	return fmt.Sprintf("%s failure: %s", f.Kind, f.Message)
}

func bodyMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}

	for _, path := range []string{"error.message", "message"} {
		if v := gjson.GetBytes(body, path); v.Type == gjson.String {
			return strings.TrimSpace(v.String())
		}
	}
	return ""
}

// statusText strips the numeric code from an HTTP status line such as
// "404 Not Found". The standard reason phrase is used when the line carries
// none.
func statusText(status int, statusLine string) string {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(statusLine), strconv.Itoa(status)))
	if text == "" {
		return http.StatusText(status)
	}
	return text
}
