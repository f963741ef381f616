package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-api-response/models"
)

const widgetsTable = "widgets"

var widgetColumns = []string{"id", "name", "color", "secret_note", "owner_id", "created_at"}

func (db *DB) insertWidgetQuery(w models.Widget) (string, []any, error) {
	query, args, err := db.builder.
		Insert(widgetsTable).
		Columns("name", "color", "secret_note", "owner_id").
		Values(w.Name, w.Color, w.SecretNote, w.OwnerID).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) selectWidgetQuery(id int64) (string, []any, error) {
	query, args, err := db.builder.
		Select(widgetColumns...).
		From(widgetsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// listWidgetsQuery builds the listing query. Empty filter fields add no
// condition; a zero limit means no limit.
func (db *DB) listWidgetsQuery(filter models.WidgetFilter) (string, []any, error) {
	builder := db.builder.
		Select(widgetColumns...).
		From(widgetsTable).
		OrderBy("id")

	if filter.Color != "" {
		builder = builder.Where(sq.Eq{"color": filter.Color})
	}
	if filter.OwnerID != 0 {
		builder = builder.Where(sq.Eq{"owner_id": filter.OwnerID})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		builder = builder.Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) deleteWidgetQuery(id, ownerID int64) (string, []any, error) {
	query, args, err := db.builder.
		Delete(widgetsTable).
		Where(sq.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
