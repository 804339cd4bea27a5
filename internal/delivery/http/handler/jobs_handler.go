package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/domain/user"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc          usecase.JobUsecase
	recommender usecase.RecommendationUsecase
}

func NewJobsHandler(uc usecase.JobUsecase, recommender usecase.RecommendationUsecase) *JobsHandler {
	return &JobsHandler{uc: uc, recommender: recommender}
}

// RegisterRoutes mounts the job endpoints. Fixed paths are registered ahead
// of /:id so they are not captured by it.
func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	recruiter := middleware.RequireUserType(user.TypeRecruiter)
	general := middleware.RequireUserType(user.TypeGeneral)

	r.Get("", h.HandleListJobs)
	r.Post("", recruiter, h.HandleCreateJob)
	r.Get("/mine", recruiter, h.HandleMyJobs)
	r.Get("/applications", general, h.HandleApplications)
	r.Get("/recommend", general, h.HandleRecommend)
	r.Get("/:id", h.HandleGetJob)
	r.Post("/:id/apply", general, h.HandleApply)
}

func (h *JobsHandler) HandleListJobs(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return err
	}
	skip, err := parseQueryIntStrict(c, "skip", 0)
	if err != nil {
		return err
	}

	page, err := h.uc.List(c.Context(), usecase.JobListParams{
		Track:    c.Query("track"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
		Search:   c.Query("search"),
		Limit:    limit,
		Skip:     skip,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Paged(c, dto.FromJobs(page.Items), pagination(page))
}

func (h *JobsHandler) HandleGetJob(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	j, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(j))
}

func (h *JobsHandler) HandleCreateJob(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	j, err := h.uc.Create(c.Context(), userID, req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Job created", dto.FromJob(j))
}

func (h *JobsHandler) HandleMyJobs(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.Mine(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(items))
}

func (h *JobsHandler) HandleApply(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	jobID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	app, created, err := h.uc.Apply(c.Context(), userID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	if !created {
		return response.Success(c, fiber.StatusOK, "Already applied", dto.FromApplication(app))
	}
	return response.Success(c, fiber.StatusCreated, "Application recorded", dto.FromApplication(app))
}

func (h *JobsHandler) HandleApplications(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.Applications(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplications(items))
}

func (h *JobsHandler) HandleRecommend(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return err
	}

	items, err := h.recommender.RecommendJobs(c.Context(), userID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRankedJobs(items))
}
