package v1

import (
	"career-guide/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterUsers(r fiber.Router, auth fiber.Handler, userHandler *handler.UserHandler, profileHandler *handler.ProfileHandler) {
	if r == nil {
		return
	}

	if userHandler != nil {
		userHandler.RegisterRoutes(r.Group("/users", auth))
	}
	if profileHandler != nil {
		profileHandler.RegisterRoutes(r.Group("/profile", auth))
	}
}
