package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

const ResumeTextFormField = "resume_text"

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
	}
}

// HandleAnalyze handles POST /analyze from the browser form. The extracted
// text comes back in the form body, so nothing is kept between requests.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	resumeText := c.FormValue(ResumeTextFormField)

	analysis := h.analyzer.Analyze(c.UserContext(), resumeText)

	return renderPage(c, fiber.StatusOK, pageData{
		ResumeText: resumeText,
		Analysis:   analysis.Feedback,
		AnalysisOK: analysis.OK(),
	})
}

// HandleAnalyzeAPI handles POST /api/v1/analyze
func (h *AnalyzeHandler) HandleAnalyzeAPI(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request payload")
	}

	analysis := h.analyzer.Analyze(c.UserContext(), req.Text)

	return c.JSON(models.AnalyzeResponse{
		Feedback: analysis.Feedback,
		OK:       analysis.OK(),
	})
}
