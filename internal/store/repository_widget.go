package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-api-response/internal/logger"
	"github.com/MKhiriev/go-api-response/models"
)

// widgetRepository is the database/sql implementation of [WidgetRepository]
// over the "widgets" table. It works with both supported drivers; the
// driver specific parts live in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type widgetRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewWidgetRepository constructs a [WidgetRepository] backed by db.
func NewWidgetRepository(db *DB, logger *logger.Logger) WidgetRepository {
	logger.Debug().Msg("creating widget repository")
	return &widgetRepository{
		db:     db,
		logger: logger,
	}
}

// CreateWidget persists w and fills in ID and CreatedAt from the RETURNING
// clause.
//
// Error handling:
//   - unique constraint violation → [ErrWidgetAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *widgetRepository) CreateWidget(ctx context.Context, w models.Widget) (models.Widget, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.insertWidgetQuery(w)
	if err != nil {
		return models.Widget{}, err
	}

	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&w.ID, &w.CreatedAt)
	})
	if err != nil {
		log.Err(err).Str("func", "*widgetRepository.CreateWidget").Msg("error inserting widget")

		if r.db.errorClassificator.Classify(err) == Conflict {
			return models.Widget{}, ErrWidgetAlreadyExists
		}
		return models.Widget{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return w, nil
}

// GetWidget returns the widget with the given id.
func (r *widgetRepository) GetWidget(ctx context.Context, id int64) (models.Widget, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectWidgetQuery(id)
	if err != nil {
		return models.Widget{}, err
	}

	var w models.Widget
	err = r.db.withRetry(ctx, func() error {
		return scanWidget(r.db.QueryRowContext(ctx, query, args...), &w)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Widget{}, ErrWidgetNotFound
	case err != nil:
		log.Err(err).Str("func", "*widgetRepository.GetWidget").Msg("error selecting widget")
		return models.Widget{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return w, nil
}

// ListWidgets returns the widgets matching filter. An empty result is an
// empty, non-nil slice.
func (r *widgetRepository) ListWidgets(ctx context.Context, filter models.WidgetFilter) ([]models.Widget, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.listWidgetsQuery(filter)
	if err != nil {
		return nil, err
	}

	var widgets []models.Widget
	err = r.db.withRetry(ctx, func() error {
		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		widgets = make([]models.Widget, 0)
		for rows.Next() {
			var w models.Widget
			if err := scanWidget(rows, &w); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			widgets = append(widgets, w)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*widgetRepository.ListWidgets").Msg("error listing widgets")
		return nil, err
	}

	return widgets, nil
}

// DeleteWidget removes a widget of ownerID. Zero affected rows means the
// widget is missing or owned by someone else; both are [ErrWidgetNotFound].
func (r *widgetRepository) DeleteWidget(ctx context.Context, id, ownerID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deleteWidgetQuery(id, ownerID)
	if err != nil {
		return err
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, err := r.db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*widgetRepository.DeleteWidget").Msg("error deleting widget")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrWidgetNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWidget(row rowScanner, w *models.Widget) error {
	return row.Scan(&w.ID, &w.Name, &w.Color, &w.SecretNote, &w.OwnerID, &w.CreatedAt)
}
