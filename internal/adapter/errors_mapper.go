package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-api-response/models"
)

// decodeEnvelope decodes the response body as an envelope. Bodies that are
// not JSON objects with an "errors" member fail with [ErrNotEnvelope].
func decodeEnvelope(body []byte) (models.Envelope, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(body, &probe); err != nil {
		return models.Envelope{}, ErrNotEnvelope
	}
	if _, ok := probe["errors"]; !ok {
		return models.Envelope{}, ErrNotEnvelope
	}

	var env models.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: %w", ErrNotEnvelope, err)
	}
	return env, nil
}

// mapEnvelope returns the failure of env, or nil for a success envelope.
func mapEnvelope(status int, env models.Envelope) error {
	if !env.Failed() {
		return nil
	}

	e := env.Errors[0]
	return &ResponseError{Status: status, Code: e.Code, Title: e.Title}
}

// mapPlainError maps a non-envelope response. 2xx responses are not errors.
func mapPlainError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return &ResponseError{Status: resp.StatusCode(), Code: resp.StatusCode(), Title: body}
}
