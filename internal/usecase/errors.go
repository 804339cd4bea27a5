package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrNoProfile           = errors.New("profile required")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInvalidVerifyToken  = errors.New("invalid verification token")
	ErrUnavailable         = errors.New("feature not configured")
	ErrUpstream            = errors.New("upstream generation failed")
	ErrTooLarge            = errors.New("payload too large")
	ErrInternal            = errors.New("internal error")
)
