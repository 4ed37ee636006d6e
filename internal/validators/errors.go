package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyGrantType = errors.New("grant_type is required")
	ErrEmptyClientID  = errors.New("client_id is required")
	ErrInvalidSlug    = errors.New("invalid category slug")
)
