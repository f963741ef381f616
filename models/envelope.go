// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// EnvelopeError is a single client-facing error inside an [Envelope].
type EnvelopeError struct {
	// Code is the API error code. For protocol and auth failures it equals
	// the HTTP status code.
	Code int `json:"code"`

	// Title is the human-readable error description.
	Title string `json:"title"`
}

// Envelope is the fixed wrapper of every API response body.
//
// A successful envelope carries Data and an empty Errors list. A failed
// envelope carries exactly one error and no data. On the wire the two shapes
// are:
//
//	{"data": <value>, "errors": []}
//	{"errors": [{"code": 42, "title": "..."}]}
type Envelope struct {
	// Data is the handler result. After decoding a response with
	// [Envelope.UnmarshalJSON] it holds the raw JSON of the data member.
	Data any

	// Errors is empty on success.
	Errors []EnvelopeError
}

// Failed reports whether e is a failure envelope.
func (e Envelope) Failed() bool {
	return len(e.Errors) > 0
}

type successWire struct {
	Data   any             `json:"data"`
	Errors []EnvelopeError `json:"errors"`
}

type failureWire struct {
	Errors []EnvelopeError `json:"errors"`
}

// MarshalJSON renders the success or failure wire shape.
func (e Envelope) MarshalJSON() ([]byte, error) {
	if e.Failed() {
		return json.Marshal(failureWire{Errors: e.Errors})
	}
	return json.Marshal(successWire{Data: e.Data, Errors: []EnvelopeError{}})
}

// UnmarshalJSON decodes either wire shape. Data is left as [json.RawMessage]
// so callers can decode it into their own type with [Envelope.DecodeData].
func (e *Envelope) UnmarshalJSON(b []byte) error {
	var wire struct {
		Data   json.RawMessage `json:"data"`
		Errors []EnvelopeError `json:"errors"`
	}
	if err := json.Unmarshal(b, &wire); err != nil {
		return fmt.Errorf("error decoding envelope: %w", err)
	}

	e.Errors = wire.Errors
	e.Data = nil
	if wire.Data != nil {
		e.Data = wire.Data
	}
	return nil
}

// DecodeData decodes the raw data member of a decoded envelope into v.
func (e Envelope) DecodeData(v any) error {
	raw, ok := e.Data.(json.RawMessage)
	if !ok {
		return ErrEnvelopeNotDecoded
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("error decoding envelope data: %w", err)
	}
	return nil
}
