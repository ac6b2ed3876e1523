// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package client

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/rpc/v2/json2"
)

// requester issues JSON-RPC 2.0 calls against a single service endpoint.
type requester struct {
	uri     string
	service string
	cli     *http.Client
}

func newRequester(uri string, endpoint string, service string, timeout time.Duration) *requester {
	return &requester{
		uri:     uri + endpoint,
		service: service,
		cli:     &http.Client{Timeout: timeout},
	}
}

func (r *requester) SendRequest(ctx context.Context, method string, params interface{}, reply interface{}) error {
	if params == nil {
		params = struct{}{}
	}
	b, err := json2.EncodeClientRequest(r.service+"."+method, params)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.uri, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.cli.Do(req)
	if err != nil {
		return fmt.Errorf("failed to issue %q: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %q returned %d", ErrUnexpectedStatus, method, resp.StatusCode)
	}
	return json2.DecodeClientResponse(resp.Body, reply)
}
