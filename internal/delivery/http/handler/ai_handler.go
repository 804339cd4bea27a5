package handler

import (
	"strconv"
	"strings"

	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/domain/user"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type AIHandler struct {
	uc usecase.AIUsecase
}

func NewAIHandler(uc usecase.AIUsecase) *AIHandler {
	return &AIHandler{uc: uc}
}

func (h *AIHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	g := r.Group("", middleware.RequireUserType(user.TypeGeneral))
	g.Post("/cv", h.HandleParseCV)
	g.Post("/compare", h.HandleCompare)
	g.Post("/roadmap", h.HandleGenerateRoadmap)
	g.Get("/roadmaps", h.HandleListRoadmaps)
	g.Get("/roadmaps/:id", h.HandleGetRoadmap)
	g.Patch("/roadmaps/:id/phases/:n", h.HandleCompletePhase)
	g.Post("/chat", h.HandleChat)
}

// HandleParseCV accepts either a JSON body with cvText or a multipart form
// carrying the document under "file".
func (h *AIHandler) HandleParseCV(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	if strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm) {
		name, contentType, data, err := readFormFile(c, "file")
		if err != nil {
			return err
		}
		p, err := h.uc.ParseCVDocument(c.Context(), userID, name, contentType, data)
		if err != nil {
			return mapUsecaseError(err)
		}
		return response.Success(c, fiber.StatusOK, "CV parsed", dto.FromProfile(p))
	}

	var req dto.CVTextRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	p, err := h.uc.ParseCV(c.Context(), userID, req.CVText)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "CV parsed", dto.FromProfile(p))
}

func (h *AIHandler) HandleCompare(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.CompareRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}
	jobID, err := uuid.Parse(strings.TrimSpace(req.JobID))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid jobId", nil, err)
	}

	res, err := h.uc.Compare(c.Context(), userID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCompare(res))
}

func (h *AIHandler) HandleGenerateRoadmap(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.RoadmapRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	rm, err := h.uc.GenerateRoadmap(c.Context(), userID, req.TargetJob, req.Timeframe)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Roadmap generated", dto.FromRoadmap(rm))
}

func (h *AIHandler) HandleListRoadmaps(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	items, err := h.uc.Roadmaps(c.Context(), userID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRoadmaps(items))
}

func (h *AIHandler) HandleGetRoadmap(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}

	rm, err := h.uc.Roadmap(c.Context(), userID, id)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRoadmap(rm))
}

func (h *AIHandler) HandleCompletePhase(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	id, err := paramUUID(c, "id")
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(c.Params("n"))
	if err != nil || n <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid phase", nil, err)
	}

	var req dto.PhaseRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&req); err != nil {
			return badRequest(err)
		}
	}

	rm, err := h.uc.CompletePhase(c.Context(), userID, id, n, req.Score)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Phase completed", dto.FromRoadmap(rm))
}

func (h *AIHandler) HandleChat(c fiber.Ctx) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.ChatRequest
	if err := c.Bind().Body(&req); err != nil {
		return badRequest(err)
	}

	text, err := h.uc.Chat(c.Context(), userID, req.Conversation)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ChatResponse{Text: text})
}
