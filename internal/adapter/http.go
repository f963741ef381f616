package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-api-response/internal/logger"
	"github.com/MKhiriev/go-api-response/internal/utils"
	"github.com/MKhiriev/go-api-response/models"
)

// BuildInfo is the decoded body of GET /api/version.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// Response is a decoded response returned by [WidgetClient.Fetch].
type Response struct {
	Status int

	// Envelope is set when IsEnvelope is true.
	Envelope   models.Envelope
	IsEnvelope bool

	// Body is the raw response body.
	Body []byte
}

type httpWidgetClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPWidgetClient constructs an HTTP/REST implementation of
// [WidgetClient]. It normalises and validates address and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPWidgetClient(address string, timeout time.Duration, logger *logger.Logger) (WidgetClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	return &httpWidgetClient{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [WidgetClient]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpWidgetClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [WidgetClient].
func (h *httpWidgetClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Version implements [WidgetClient].
func (h *httpWidgetClient) Version(ctx context.Context) (BuildInfo, error) {
	resp, err := h.request(ctx).Get("/api/version")
	if err != nil {
		return BuildInfo{}, fmt.Errorf("version request: %w", err)
	}

	var info BuildInfo
	env, err := decodeEnvelope(resp.Body())
	if errors.Is(err, ErrNotEnvelope) {
		if err = mapPlainError(resp); err != nil {
			return BuildInfo{}, err
		}
		if err = json.Unmarshal(resp.Body(), &info); err != nil {
			return BuildInfo{}, fmt.Errorf("decode version response: %w", err)
		}
		return info, nil
	}
	if err != nil {
		return BuildInfo{}, err
	}

	if err = mapEnvelope(resp.StatusCode(), env); err != nil {
		return BuildInfo{}, err
	}
	if err = env.DecodeData(&info); err != nil {
		return BuildInfo{}, fmt.Errorf("decode version response: %w", err)
	}
	return info, nil
}

// ListWidgets implements [WidgetClient]. Zero filter fields are not sent.
func (h *httpWidgetClient) ListWidgets(ctx context.Context, filter models.WidgetFilter) ([]models.Widget, error) {
	req := h.request(ctx)
	if filter.Color != "" {
		req.SetQueryParam("color", filter.Color)
	}
	if filter.OwnerID != 0 {
		req.SetQueryParam("owner_id", strconv.FormatInt(filter.OwnerID, 10))
	}
	if filter.Limit != 0 {
		req.SetQueryParam("limit", strconv.FormatUint(filter.Limit, 10))
	}
	if filter.Offset != 0 {
		req.SetQueryParam("offset", strconv.FormatUint(filter.Offset, 10))
	}

	var widgets []models.Widget
	if err := h.do(req, http.MethodGet, "/api/widgets", &widgets); err != nil {
		return nil, fmt.Errorf("list widgets: %w", err)
	}
	return widgets, nil
}

// GetWidget implements [WidgetClient].
func (h *httpWidgetClient) GetWidget(ctx context.Context, id int64) (models.Widget, error) {
	var widget models.Widget
	if err := h.do(h.request(ctx), http.MethodGet, widgetPath(id), &widget); err != nil {
		return models.Widget{}, fmt.Errorf("get widget: %w", err)
	}
	return widget, nil
}

// CreateWidget implements [WidgetClient]. Requires a bearer token.
func (h *httpWidgetClient) CreateWidget(ctx context.Context, req models.CreateWidgetRequest) (models.Widget, error) {
	r := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req)

	var widget models.Widget
	if err := h.do(r, http.MethodPost, "/api/widgets", &widget); err != nil {
		return models.Widget{}, fmt.Errorf("create widget: %w", err)
	}
	return widget, nil
}

// DeleteWidget implements [WidgetClient]. Requires a bearer token.
func (h *httpWidgetClient) DeleteWidget(ctx context.Context, id int64) error {
	if err := h.do(h.request(ctx), http.MethodDelete, widgetPath(id), nil); err != nil {
		return fmt.Errorf("delete widget: %w", err)
	}
	return nil
}

// Me implements [WidgetClient]. Requires a bearer token.
func (h *httpWidgetClient) Me(ctx context.Context) (models.UserInfo, error) {
	var info models.UserInfo
	if err := h.do(h.request(ctx), http.MethodGet, "/api/me", &info); err != nil {
		return models.UserInfo{}, fmt.Errorf("me: %w", err)
	}
	return info, nil
}

// Fetch implements [WidgetClient].
func (h *httpWidgetClient) Fetch(ctx context.Context, method, path string) (Response, error) {
	resp, err := h.request(ctx).Execute(method, path)
	if err != nil {
		return Response{}, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	out := Response{Status: resp.StatusCode(), Body: resp.Body()}
	if env, err := decodeEnvelope(resp.Body()); err == nil {
		out.Envelope, out.IsEnvelope = env, true
	}
	return out, nil
}

// do executes req and decodes the envelope data into out. A nil out
// discards the data.
func (h *httpWidgetClient) do(req *resty.Request, method, path string, out any) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	env, err := decodeEnvelope(resp.Body())
	if err != nil {
		if plainErr := mapPlainError(resp); plainErr != nil {
			return plainErr
		}
		return err
	}

	if err = mapEnvelope(resp.StatusCode(), env); err != nil {
		h.logger.Debug().Err(err).Str("path", path).Msg("server returned failure envelope")
		return err
	}

	if out == nil {
		return nil
	}
	return env.DecodeData(out)
}

func (h *httpWidgetClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func widgetPath(id int64) string {
	return "/api/widgets/" + strconv.FormatInt(id, 10)
}
