package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

const ResumeFormField = "resume"

type UploadHandler struct {
	extractor   services.ExtractorService
	maxFileSize int64
}

func NewUploadHandler(
	extractor services.ExtractorService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		extractor:   extractor,
		maxFileSize: maxFileSize,
	}
}

// HandleUpload handles POST /upload from the browser form.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, fiberErr := h.readUpload(c)
	if fiberErr != nil {
		return renderPage(c, fiberErr.Code, pageData{Error: fiberErr.Message})
	}

	text, err := h.extractor.Extract(file)
	if err != nil {
		return renderPage(c, extractionStatus(err), pageData{
			FileName: file.Name,
			Error:    services.ExtractionMessage(err),
		})
	}

	return renderPage(c, fiber.StatusOK, pageData{
		FileName:   file.Name,
		ResumeText: text,
	})
}

// HandleExtract handles POST /api/v1/extract
func (h *UploadHandler) HandleExtract(c *fiber.Ctx) error {
	file, fiberErr := h.readUpload(c)
	if fiberErr != nil {
		return jsonError(c, fiberErr.Code, fiberErr.Message)
	}

	text, err := h.extractor.Extract(file)
	if err != nil {
		return jsonError(c, extractionStatus(err), services.ExtractionMessage(err))
	}

	return c.JSON(models.ExtractResponse{
		ID:         file.ID.String(),
		Filename:   file.Name,
		FileType:   string(file.Type),
		Text:       text,
		Characters: len([]rune(text)),
	})
}

func (h *UploadHandler) readUpload(c *fiber.Ctx) (*models.UploadedFile, *fiber.Error) {
	header, err := c.FormFile(ResumeFormField)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "No file uploaded. Please upload your resume as a PDF or DOCX file.")
	}

	if header.Size > h.maxFileSize {
		return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize))
	}

	src, err := header.Open()
	if err != nil {
		log.Printf("❌ Failed to open uploaded file %s: %v\n", header.Filename, err)
		return nil, fiber.NewError(fiber.StatusBadRequest, "failed to read uploaded file")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		log.Printf("❌ Failed to read uploaded file %s: %v\n", header.Filename, err)
		return nil, fiber.NewError(fiber.StatusBadRequest, "failed to read uploaded file")
	}

	file := models.NewUploadedFile(header.Filename, content)
	log.Printf("📥 Upload %s received: %s (%d bytes)\n", file.ID, file.Name, len(content))

	return file, nil
}

func extractionStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrUnsupportedFormat):
		return fiber.StatusUnsupportedMediaType
	case errors.Is(err, services.ErrNoTextFound), errors.Is(err, services.ErrExtractionFailed):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
