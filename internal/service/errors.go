package service

import "errors"

var (
	ErrEmptyCategorySlug = errors.New("category slug is empty")
	ErrEmptyAccessToken  = errors.New("empty access token received")
)

// Development server errors.
var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrInvalidCursor         = errors.New("invalid page cursor")
	ErrUnsupportedGrantType  = errors.New("unsupported grant type")
	ErrInvalidClient         = errors.New("client authentication failed")
	ErrInvalidAccessToken    = errors.New("the access token is invalid")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
