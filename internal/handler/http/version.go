package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(r *http.Request) (any, error) {
	return h.services.AppInfoService.GetBuildInfo(r.Context()), nil
}
