// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-api-response/internal/logger"
	"github.com/MKhiriev/go-api-response/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient creates an httpWidgetClient pointed at the test server.
func newTestClient(t *testing.T, handler http.HandlerFunc) *httpWidgetClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewHTTPWidgetClient(srv.URL, 5*time.Second, logger.Nop())
	require.NoError(t, err)
	return c.(*httpWidgetClient)
}

func writeBody(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// ---- Construction ----

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "full url with trailing slash", raw: "https://api.example.com/", want: "https://api.example.com"},
		{name: "whitespace", raw: "  http://h:1  ", want: "http://h:1"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPWidgetClient_EmptyAddress(t *testing.T) {
	_, err := NewHTTPWidgetClient("", time.Second, logger.Nop())
	assert.ErrorIs(t, err, ErrEmptyAddress)
}

func TestSetToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	assert.Empty(t, c.Token())
	c.SetToken("  abc  ")
	assert.Equal(t, "abc", c.Token())
}

// ---- Success envelopes ----

func TestListWidgets_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/widgets", r.URL.Path)
		assert.Equal(t, "red", r.URL.Query().Get("color"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		assert.False(t, r.URL.Query().Has("offset"))
		assert.Empty(t, r.Header.Get("Authorization"))

		writeBody(w, http.StatusOK, `{"data":[{"id":1,"name":"gear","color":"red","created_at":"2026-01-02T03:04:05Z"}],"errors":[]}`)
	})

	got, err := c.ListWidgets(context.Background(), models.WidgetFilter{Color: "red", Limit: 5})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "gear", got[0].Name)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), got[0].CreatedAt.UTC())
}

func TestCreateWidget_SendsTokenAndBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"gear","color":"","secret_note":"s"}`, string(body))

		writeBody(w, http.StatusOK, `{"data":{"id":3,"name":"gear","secret_note":"s","owner_id":7,"created_at":"2026-01-02T03:04:05Z"},"errors":[]}`)
	})
	c.SetToken("tok")

	got, err := c.CreateWidget(context.Background(), models.CreateWidgetRequest{Name: "gear", SecretNote: "s"})

	require.NoError(t, err)
	assert.Equal(t, "s", got.SecretNote)
	assert.Equal(t, int64(7), got.OwnerID)
}

func TestDeleteWidget_NullData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/widgets/9", r.URL.Path)
		writeBody(w, http.StatusOK, `{"data":null,"errors":[]}`)
	})

	assert.NoError(t, c.DeleteWidget(context.Background(), 9))
}

func TestMe(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{"data":{"user_id":7,"issuer":"widgets"},"errors":[]}`)
	})

	got, err := c.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.UserInfo{UserID: 7, Issuer: "widgets"}, got)
}

// ---- Version: envelope or plain ----

func TestVersion(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "envelope", body: `{"data":{"version":"1.2.3","date":"d","commit":"c"},"errors":[]}`},
		{name: "plain", body: `{"version":"1.2.3","date":"d","commit":"c"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/version", r.URL.Path)
				writeBody(w, http.StatusOK, tt.body)
			})

			got, err := c.Version(context.Background())

			require.NoError(t, err)
			assert.Equal(t, BuildInfo{Version: "1.2.3", Date: "d", Commit: "c"}, got)
		})
	}
}

// ---- Failures ----

func TestFailures(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantIs    error
		wantCode  int
		wantTitle string
	}{
		{
			name:      "protocol envelope",
			status:    http.StatusNotFound,
			body:      `{"errors":[{"code":404,"title":"Not Found"}]}`,
			wantIs:    ErrNotFound,
			wantCode:  404,
			wantTitle: "Not Found",
		},
		{
			name:      "application envelope",
			status:    http.StatusConflict,
			body:      `{"errors":[{"code":1002,"title":"widget already exists"}]}`,
			wantIs:    ErrConflict,
			wantCode:  1002,
			wantTitle: "widget already exists",
		},
		{
			name:      "auth envelope",
			status:    http.StatusUnauthorized,
			body:      `{"errors":[{"code":401,"title":"Unauthorized"}]}`,
			wantIs:    ErrUnauthorized,
			wantCode:  401,
			wantTitle: "Unauthorized",
		},
		{
			name:      "validation envelope",
			status:    http.StatusUnprocessableEntity,
			body:      `{"errors":[{"code":1001,"title":"name is required"}]}`,
			wantIs:    ErrUnprocessable,
			wantCode:  1001,
			wantTitle: "name is required",
		},
		{
			name:      "plain error body",
			status:    http.StatusInternalServerError,
			body:      "Internal Server Error\n",
			wantIs:    ErrInternalServerError,
			wantCode:  500,
			wantTitle: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeBody(w, tt.status, tt.body)
			})

			_, err := c.GetWidget(context.Background(), 1)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantIs)

			var respErr *ResponseError
			require.True(t, errors.As(err, &respErr))
			assert.Equal(t, tt.status, respErr.Status)
			assert.Equal(t, tt.wantCode, respErr.Code)
			assert.Equal(t, tt.wantTitle, respErr.Title)
		})
	}
}

func TestPlainSuccessIsNotEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeBody(w, http.StatusOK, `{"id":1}`)
	})

	_, err := c.GetWidget(context.Background(), 1)

	assert.ErrorIs(t, err, ErrNotEnvelope)
}

func TestResponseError_UnknownStatus(t *testing.T) {
	err := &ResponseError{Status: http.StatusTeapot, Code: 418, Title: "teapot"}

	assert.NoError(t, errors.Unwrap(err))
	assert.Equal(t, "http 418: code 418: teapot", err.Error())
}

// ---- Fetch ----

func TestFetch(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantEnvelope bool
		wantFailed   bool
	}{
		{name: "success envelope", status: 200, body: `{"data":1,"errors":[]}`, wantEnvelope: true},
		{name: "failure envelope", status: 404, body: `{"errors":[{"code":404,"title":"Not Found"}]}`, wantEnvelope: true, wantFailed: true},
		{name: "plain body", status: 200, body: "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/any/path", r.URL.Path)
				writeBody(w, tt.status, tt.body)
			})

			got, err := c.Fetch(context.Background(), http.MethodGet, "/any/path")

			require.NoError(t, err)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.body, string(got.Body))
			assert.Equal(t, tt.wantEnvelope, got.IsEnvelope)
			assert.Equal(t, tt.wantFailed, got.Envelope.Failed())
		})
	}
}
