// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-api-response/internal/utils"
	"github.com/MKhiriev/go-api-response/models"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

func (h *Handler) listWidgets(r *http.Request) (any, error) {
	filter, err := widgetFilterFromQuery(r)
	if err != nil {
		return nil, err
	}
	return h.services.WidgetService.ListWidgets(r.Context(), filter)
}

func (h *Handler) getWidget(r *http.Request) (any, error) {
	id, err := widgetIDFromURL(r)
	if err != nil {
		return nil, err
	}
	return h.services.WidgetService.GetWidget(r.Context(), id)
}

func (h *Handler) createWidget(r *http.Request) (any, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return nil, ErrNoUserInContext
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading widget: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: empty body", ErrInvalidBody)
	}

	var req models.CreateWidgetRequest
	if err = json.Unmarshal(body, &req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	return h.services.WidgetService.CreateWidget(r.Context(), userID, req)
}

func (h *Handler) deleteWidget(r *http.Request) (any, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return nil, ErrNoUserInContext
	}

	id, err := widgetIDFromURL(r)
	if err != nil {
		return nil, err
	}

	return nil, h.services.WidgetService.DeleteWidget(r.Context(), id, userID)
}

func widgetIDFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidWidgetID
	}
	return id, nil
}

// widgetFilterFromQuery reads color, owner_id, limit and offset.
func widgetFilterFromQuery(r *http.Request) (models.WidgetFilter, error) {
	q := r.URL.Query()
	filter := models.WidgetFilter{Color: q.Get("color")}

	var err error
	if v := q.Get("owner_id"); v != "" {
		if filter.OwnerID, err = strconv.ParseInt(v, 10, 64); err != nil {
			return models.WidgetFilter{}, fmt.Errorf("%w: owner_id", ErrInvalidQuery)
		}
	}
	if v := q.Get("limit"); v != "" {
		if filter.Limit, err = strconv.ParseUint(v, 10, 64); err != nil {
			return models.WidgetFilter{}, fmt.Errorf("%w: limit", ErrInvalidQuery)
		}
	}
	if v := q.Get("offset"); v != "" {
		if filter.Offset, err = strconv.ParseUint(v, 10, 64); err != nil {
			return models.WidgetFilter{}, fmt.Errorf("%w: offset", ErrInvalidQuery)
		}
	}

	return filter, nil
}
