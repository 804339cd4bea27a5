package v1

import (
	"career-guide/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterCatalogue(r fiber.Router, auth fiber.Handler, jobs *handler.JobsHandler, resources *handler.ResourcesHandler) {
	if r == nil {
		return
	}

	if jobs != nil {
		jobs.RegisterRoutes(r.Group("/jobs", auth))
	}
	if resources != nil {
		resources.RegisterRoutes(r.Group("/resources", auth))
	}
}
