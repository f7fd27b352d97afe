// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/prosumer-ledger-client/internal/utils"
)

// Response is a successful (2xx) HTTP response.
type Response struct {
	Status     int
	StatusText string
	Body       []byte
}

type httpTransport struct {
	client *utils.HTTPClient
}

// NewHTTPTransport returns a [Transport] backed by resty.
//
// The client has no timeout and no retries, and requests are detached from
// context cancellation: once issued, a request runs until the server answers
// or the connection fails.
func NewHTTPTransport() Transport {
	client := utils.NewHTTPClient()
	client.SetHeader("Accept", "application/json")

	return &httpTransport{client: client}
}

// Do implements [Transport].
func (t *httpTransport) Do(ctx context.Context, method, url string, body any) (Response, error) {
	req := t.client.R().SetContext(context.WithoutCancel(ctx))
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return Response{}, NewTransportFailure(err.Error())
	}

	status := resp.StatusCode()
	text := statusText(status, resp.Status())
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return Response{}, NewServerFailure(status, text, resp.Body())
	}

	return Response{Status: status, StatusText: text, Body: resp.Body()}, nil
}
