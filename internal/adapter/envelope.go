// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// duplicateClaimMessage is the exact text the backend emits when an
// inventory entry for the item already exists. There is no error code.
const duplicateClaimMessage = "item already exists in inventory"

// envelope is the normalised form of the two response shapes the backend
// uses. Most endpoints answer {status:"success", message, data}; the login
// endpoint answers {success:true|false, message, ...flat fields}. Success is
// a pointer so its absence can be told apart from an explicit false.
type envelope struct {
	Status  string          `json:"status"`
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// ok reports whether the envelope signals success under either shape.
func (e envelope) ok() bool {
	if e.Success != nil {
		return *e.Success
	}
	return strings.EqualFold(e.Status, "success")
}

// decodeEnvelope maps transport-level failures first, then parses the body
// into the normalised envelope and maps business failures to sentinel errors.
// A nil error means the call succeeded and env carries the payload.
func decodeEnvelope(resp *resty.Response) (envelope, error) {
	if err := mapHTTPError(resp); err != nil {
		return envelope{}, err
	}

	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil {
		return envelope{}, fmt.Errorf("decode response envelope: %w", err)
	}

	if !env.ok() {
		return env, mapEnvelopeError(env)
	}

	return env, nil
}

// mapEnvelopeError converts a failed envelope into a sentinel-wrapped error.
func mapEnvelopeError(env envelope) error {
	msg := strings.TrimSpace(env.Message)
	if strings.EqualFold(msg, duplicateClaimMessage) {
		return fmt.Errorf("%w: %s", ErrAlreadyInInventory, msg)
	}
	if msg == "" {
		msg = "request failed"
	}
	return fmt.Errorf("%w: %s", ErrServerFailure, msg)
}

// decodeData unmarshals the envelope's data payload into target.
func decodeData(env envelope, target any) error {
	if len(env.Data) == 0 {
		return fmt.Errorf("response envelope carries no data")
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// unmarshalBody parses the full response body into target. Some endpoints
// place their fields next to the envelope instead of under data; callers use
// this after decodeEnvelope has confirmed success.
func unmarshalBody(body []byte, target any) error {
	return json.Unmarshal(body, target)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	default:
		if resp.StatusCode() >= http.StatusInternalServerError {
			return fmt.Errorf("%w: %s", ErrInternalServerError, body)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
