package store

import (
	"context"

	"github.com/MKhiriev/go-api-response/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// WidgetRepository persists widgets.
type WidgetRepository interface {
	// CreateWidget inserts w and returns it with the server-assigned ID and
	// creation time. A duplicate name yields [ErrWidgetAlreadyExists].
	CreateWidget(ctx context.Context, w models.Widget) (models.Widget, error)

	// GetWidget returns the widget with id or [ErrWidgetNotFound].
	GetWidget(ctx context.Context, id int64) (models.Widget, error)

	// ListWidgets returns widgets matching filter ordered by ID.
	ListWidgets(ctx context.Context, filter models.WidgetFilter) ([]models.Widget, error)

	// DeleteWidget removes the widget with id owned by ownerID. Widgets of
	// other owners are reported as [ErrWidgetNotFound].
	DeleteWidget(ctx context.Context, id, ownerID int64) error
}
