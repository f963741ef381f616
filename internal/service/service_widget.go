package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-api-response/internal/logger"
	"github.com/MKhiriev/go-api-response/internal/store"
	"github.com/MKhiriev/go-api-response/internal/validators"
	"github.com/MKhiriev/go-api-response/models"
)

// DefaultListLimit is applied when a listing asks for no explicit limit.
const DefaultListLimit = 20

type widgetService struct {
	widgets   store.WidgetRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewWidgetService(widgets store.WidgetRepository, validator validators.Validator, logger *logger.Logger) WidgetService {
	return &widgetService{
		widgets:   widgets,
		validator: validator,
		logger:    logger,
	}
}

func (s *widgetService) CreateWidget(ctx context.Context, ownerID int64, req models.CreateWidgetRequest) (models.Widget, error) {
	log := logger.FromContext(ctx)

	widget := models.Widget{
		Name:       req.Name,
		Color:      req.Color,
		SecretNote: req.SecretNote,
		OwnerID:    ownerID,
	}
	if err := s.validator.Validate(ctx, widget); err != nil {
		log.Debug().Err(err).Int64("owner_id", ownerID).Msg("widget validation failed")
		return models.Widget{}, fmt.Errorf("error during widget validation before saving: %w", err)
	}

	created, err := s.widgets.CreateWidget(ctx, widget)
	if err != nil {
		return models.Widget{}, fmt.Errorf("widget creation ended with error: %w", err)
	}

	log.Info().Int64("widget_id", created.ID).Int64("owner_id", ownerID).Msg("widget created")
	return created, nil
}

func (s *widgetService) GetWidget(ctx context.Context, id int64) (models.Widget, error) {
	if err := s.validator.Validate(ctx, models.Widget{ID: id}, validators.FieldID); err != nil {
		return models.Widget{}, err
	}

	widget, err := s.widgets.GetWidget(ctx, id)
	if err != nil {
		return models.Widget{}, fmt.Errorf("widget lookup ended with error: %w", err)
	}

	return widget, nil
}

func (s *widgetService) ListWidgets(ctx context.Context, filter models.WidgetFilter) ([]models.Widget, error) {
	if err := s.validator.Validate(ctx, filter); err != nil {
		return nil, err
	}
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}

	widgets, err := s.widgets.ListWidgets(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("widget listing ended with error: %w", err)
	}
	if widgets == nil {
		widgets = []models.Widget{}
	}

	return widgets, nil
}

func (s *widgetService) DeleteWidget(ctx context.Context, id, ownerID int64) error {
	err := s.validator.Validate(ctx, models.Widget{ID: id, OwnerID: ownerID}, validators.FieldID, validators.FieldOwnerID)
	if err != nil {
		return err
	}

	if err = s.widgets.DeleteWidget(ctx, id, ownerID); err != nil {
		return fmt.Errorf("widget deletion ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("widget_id", id).Int64("owner_id", ownerID).Msg("widget deleted")
	return nil
}
