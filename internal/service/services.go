package service

import (
	"github.com/MKhiriev/go-api-response/internal/config"
	"github.com/MKhiriev/go-api-response/internal/logger"
	"github.com/MKhiriev/go-api-response/internal/store"
	"github.com/MKhiriev/go-api-response/internal/validators"
	"github.com/MKhiriev/go-api-response/models"
)

type Services struct {
	WidgetService  WidgetService
	AuthService    AuthService
	AppInfoService AppInfoService
}

func NewServices(widgets store.WidgetRepository, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		WidgetService:  NewWidgetService(widgets, validators.NewWidgetValidator(), logger),
		AuthService:    NewAuthService(cfg.Auth, logger),
		AppInfoService: appInfoService,
	}, nil
}
