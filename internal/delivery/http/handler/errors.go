package handler

import (
	"errors"
	"strconv"
	"strings"

	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/infrastructure/llm"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"
	ucauth "career-guide/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var decodeErr *llm.DecodeError
	if errors.As(err, &decodeErr) {
		return middleware.NewAppError(fiber.StatusBadGateway, "Generated reply was not valid JSON", map[string]any{"raw": decodeErr.Raw}, err)
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailAlreadyRegistered):
		return middleware.NewAppError(fiber.StatusConflict, "Email already registered", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid email or password", nil, err)
	case errors.Is(err, ucauth.ErrInvalidInput), errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, badRequestMessage(err), nil, err)
	case errors.Is(err, usecase.ErrNoProfile):
		return middleware.NewAppError(fiber.StatusBadRequest, "Create a profile first", nil, err)
	case errors.Is(err, usecase.ErrRefreshTokenExpired):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Refresh token expired", nil, err)
	case errors.Is(err, usecase.ErrInvalidRefreshToken):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid refresh token", nil, err)
	case errors.Is(err, usecase.ErrInvalidVerifyToken):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid verification token", nil, err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrConflict):
		return middleware.NewAppError(fiber.StatusConflict, "Already exists", nil, err)
	case errors.Is(err, usecase.ErrTooLarge):
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "File exceeds 5 MiB", nil, err)
	case errors.Is(err, usecase.ErrUnavailable):
		return middleware.NewAppError(fiber.StatusServiceUnavailable, "Feature is not configured", nil, err)
	case errors.Is(err, usecase.ErrUpstream):
		return middleware.NewAppError(fiber.StatusBadGateway, "Text generation failed", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

// badRequestMessage keeps the detail a usecase attaches after the sentinel,
// e.g. "invalid input: title is required".
func badRequestMessage(err error) string {
	msg := err.Error()
	for _, prefix := range []string{usecase.ErrInvalidInput.Error() + ": ", ucauth.ErrInvalidInput.Error() + ": "} {
		if strings.HasPrefix(msg, prefix) {
			return strings.TrimPrefix(msg, prefix)
		}
	}
	return "Bad request"
}

func badRequest(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
}

func paramUUID(c fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+name, nil, err)
	}
	return id, nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := strings.TrimSpace(c.Query(key))
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, err)
	}
	if v < 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid "+key, nil, nil)
	}
	return v, nil
}

func pagination[T any](p usecase.Page[T]) response.Pagination {
	return response.Pagination{Total: p.Total, Limit: p.Limit, Skip: p.Skip, HasMore: p.HasMore}
}
