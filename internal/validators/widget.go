package validators

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/MKhiriev/go-api-response/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the server-assigned widget identifier.
	FieldID = "id"

	// FieldOwnerID targets the identifier of the widget owner.
	FieldOwnerID = "owner_id"

	// FieldName targets the widget display name.
	FieldName = "name"

	// FieldColor targets the optional color label.
	FieldColor = "color"

	// FieldSecretNote targets the owner-only note.
	FieldSecretNote = "secret_note"

	// FieldLimit targets the page size of a listing filter.
	FieldLimit = "limit"
)

// Boundaries enforced on widget input.
const (
	MaxNameLength       = 64
	MaxColorLength      = 32
	MaxSecretNoteLength = 1024
	MaxListLimit        = 100
)

// WidgetValidator implements [Validator] for widget models:
// CreateWidgetRequest, Widget and WidgetFilter. Value and pointer forms are
// both accepted.
type WidgetValidator struct{}

// NewWidgetValidator returns a stateless [WidgetValidator].
func NewWidgetValidator() Validator {
	return &WidgetValidator{}
}

// Validate dispatches on the dynamic type of obj. Unknown types yield
// [ErrUnsupportedType]; unknown field names yield [ErrUnknownField].
func (v *WidgetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateWidgetRequest:
		return v.validateCreateRequest(value, fields...)
	case *models.CreateWidgetRequest:
		return v.validateCreateRequest(*value, fields...)

	case models.Widget:
		return v.validateWidget(value, fields...)
	case *models.Widget:
		return v.validateWidget(*value, fields...)

	case models.WidgetFilter:
		return v.validateFilter(value, fields...)
	case *models.WidgetFilter:
		return v.validateFilter(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCreateRequest defaults to name, color and secret note.
func (v *WidgetValidator) validateCreateRequest(req models.CreateWidgetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldColor, FieldSecretNote}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = validateName(req.Name)
		case FieldColor:
			err = validateColor(req.Color, ErrInvalidColor)
		case FieldSecretNote:
			err = validateSecretNote(req.SecretNote)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateWidget defaults to every field a stored widget must carry.
func (v *WidgetValidator) validateWidget(w models.Widget, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldName, FieldColor, FieldSecretNote}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			if w.ID <= 0 {
				err = ErrInvalidWidgetID
			}
		case FieldOwnerID:
			if w.OwnerID <= 0 {
				err = ErrInvalidOwnerID
			}
		case FieldName:
			err = validateName(w.Name)
		case FieldColor:
			err = validateColor(w.Color, ErrInvalidColor)
		case FieldSecretNote:
			err = validateSecretNote(w.SecretNote)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *WidgetValidator) validateFilter(filter models.WidgetFilter, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldColor, FieldLimit}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldColor:
			err = validateColor(filter.Color, ErrInvalidFilterColor)
		case FieldLimit:
			if filter.Limit > MaxListLimit {
				err = ErrLimitTooLarge
			}
		case FieldOwnerID:
			if filter.OwnerID < 0 {
				err = ErrInvalidOwnerID
			}
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// validateColor accepts the empty string.
func validateColor(color string, invalid error) error {
	if len(color) > MaxColorLength {
		return invalid
	}
	for _, r := range color {
		if r < 'a' || r > 'z' {
			return invalid
		}
	}
	return nil
}

func validateSecretNote(note string) error {
	if utf8.RuneCountInString(note) > MaxSecretNoteLength {
		return ErrSecretNoteTooLong
	}
	return nil
}

// IsValidationError reports whether err originates from this package.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var validationErrors = []error{
	ErrInvalidWidgetID,
	ErrInvalidOwnerID,
	ErrEmptyName,
	ErrNameTooLong,
	ErrInvalidColor,
	ErrSecretNoteTooLong,
	ErrLimitTooLarge,
	ErrInvalidFilterColor,
}
