package handler

import (
	"io"

	"career-guide/internal/delivery/http/dto"
	"career-guide/internal/delivery/http/middleware"
	"career-guide/internal/pkg/response"
	"career-guide/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UploadHandler struct {
	uc usecase.UploadUsecase
}

func NewUploadHandler(uc usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{uc: uc}
}

func (h *UploadHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("", h.HandleUpload)
}

func (h *UploadHandler) HandleUpload(c fiber.Ctx) error {
	name, contentType, data, err := readFormFile(c, "file")
	if err != nil {
		return err
	}

	url, err := h.uc.Upload(c.Context(), name, contentType, data)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "File uploaded", dto.UploadResponse{URL: url})
}

// readFormFile reads at most one byte past the document cap so oversized
// files are reported as such instead of being silently truncated.
func readFormFile(c fiber.Ctx, field string) (string, string, []byte, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", "", nil, middleware.NewAppError(fiber.StatusBadRequest, "Missing "+field, nil, err)
	}
	if fh.Size > usecase.MaxDocumentSize {
		return "", "", nil, mapUsecaseError(usecase.ErrTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return "", "", nil, badRequest(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, usecase.MaxDocumentSize+1))
	if err != nil {
		return "", "", nil, badRequest(err)
	}
	if len(data) > usecase.MaxDocumentSize {
		return "", "", nil, mapUsecaseError(usecase.ErrTooLarge)
	}
	return fh.Filename, fh.Header.Get(fiber.HeaderContentType), data, nil
}
