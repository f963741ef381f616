package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidWidgetID    = errors.New("invalid widget ID")
	ErrInvalidOwnerID     = errors.New("invalid owner ID")
	ErrEmptyName          = errors.New("name is required")
	ErrNameTooLong        = errors.New("name is too long")
	ErrInvalidColor       = errors.New("color must consist of lowercase latin letters")
	ErrSecretNoteTooLong  = errors.New("secret note is too long")
	ErrLimitTooLarge      = errors.New("limit is too large")
	ErrInvalidFilterColor = errors.New("filter color must consist of lowercase latin letters")
)
