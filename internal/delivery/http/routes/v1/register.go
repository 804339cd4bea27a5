package v1

import (
	"career-guide/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Profile   *handler.ProfileHandler
	Jobs      *handler.JobsHandler
	Resources *handler.ResourcesHandler
	AI        *handler.AIHandler
	Upload    *handler.UploadHandler
}

// Register mounts the versioned API. auth guards everything except the
// auth endpoints.
func Register(r fiber.Router, h Handlers, auth fiber.Handler) {
	if r == nil {
		return
	}

	if h.Auth != nil {
		h.Auth.RegisterRoutes(r.Group("/auth"))
	}

	RegisterUsers(r, auth, h.User, h.Profile)
	RegisterCatalogue(r, auth, h.Jobs, h.Resources)

	if h.AI != nil {
		h.AI.RegisterRoutes(r.Group("/ai", auth))
	}
	if h.Upload != nil {
		h.Upload.RegisterRoutes(r.Group("/uploads", auth))
	}
}
