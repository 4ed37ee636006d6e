package validators

import (
	"context"
	"regexp"

	"github.com/jasvilladarez/ello-go/models"
)

const (
	FieldGrantType = "grant_type"
	FieldClientID  = "client_id"
)

// Slug is a category slug taken from a request path.
type Slug string

// slugPattern matches lowercase words joined by single dashes.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

const maxSlugLength = 64

type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TokenRequest:
		return v.validateTokenRequest(ctx, value, fields...)
	case *models.TokenRequest:
		return v.validateTokenRequest(ctx, *value, fields...)

	case Slug:
		return validateSlug(value)

	default:
		return ErrUnsupportedType
	}
}

// validateTokenRequest checks presence only. Whether the grant is supported
// and the credentials match is decided by the token issuer.
func (v *RequestValidator) validateTokenRequest(_ context.Context, req models.TokenRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGrantType, FieldClientID}
	}

	for _, f := range fields {
		switch f {
		case FieldGrantType:
			if req.GrantType == "" {
				return ErrEmptyGrantType
			}
		case FieldClientID:
			if req.ClientID == "" {
				return ErrEmptyClientID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateSlug(slug Slug) error {
	if len(slug) > maxSlugLength || !slugPattern.MatchString(string(slug)) {
		return ErrInvalidSlug
	}
	return nil
}
