package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrNoTokenSignKey          = errors.New("token sign key is not configured")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
