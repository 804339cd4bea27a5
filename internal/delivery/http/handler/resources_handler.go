package handler

import (
	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/domain/user"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResourcesHandler struct {
	uc          usecase.ResourceUsecase
	recommender usecase.RecommendationUsecase
}

func NewResourcesHandler(uc usecase.ResourceUsecase, recommender usecase.RecommendationUsecase) *ResourcesHandler {
	return &ResourcesHandler{uc: uc, recommender: recommender}
}

func (h *ResourcesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	provider := middleware.RequireUserType(user.TypeCourseProvider)
	general := middleware.RequireUserType(user.TypeGeneral)

	r.Get("", h.HandleList)
	r.Post("", provider, h.HandleCreate)
	r.Get("/marks", general, h.HandleMarks)
	r.Get("/recommend", general, h.HandleRecommend)
	r.Get("/:id", h.HandleGet)
	r.Post("/:id/mark", general, h.HandleMark)
}

func (h *ResourcesHandler) HandleList(c fiber.Ctx) error {
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return err
	}
	skip, err := parseQueryIntStrict(c, "skip", 0)
	if err != nil {
		return err
	}

	page, err := h.uc.List(c.Context(), usecase.ResourceListParams{
		Skill:    c.Query("skill"),
		Cost:     c.Query("cost"),
		Platform: c.Query("platform"),
		Search:   c.Query("search"),
		Limit:    limit,
		Skip:     skip,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Paged(c, dto.FromResources(page.Items), pagination(page))
}

func (h *ResourcesHandler) HandleGet(c fiber.Ctx) error {
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	res, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromResource(res))
}

func (h *ResourcesHandler) HandleCreate(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.ResourceRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	res, err := h.uc.Create(c.Context(), userID, req.Input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Resource created", dto.FromResource(res))
}

func (h *ResourcesHandler) HandleMark(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	resourceID, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	var req dto.MarkRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	m, err := h.uc.Mark(c.Context(), userID, resourceID, req.Status)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMark(m))
}

func (h *ResourcesHandler) HandleMarks(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.Marks(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromMarks(items))
}

func (h *ResourcesHandler) HandleRecommend(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return err
	}

	items, err := h.recommender.RecommendResources(c.Context(), userID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRankedResources(items))
}
