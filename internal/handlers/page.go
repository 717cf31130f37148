package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/web"
)

const AppTitle = "AI-Powered Resume Analyzer"

// pageData is everything the index template can show for one request.
type pageData struct {
	FileName   string
	ResumeText string
	Error      string
	Analysis   string
	AnalysisOK bool
}

func renderPage(c *fiber.Ctx, status int, data pageData) error {
	return c.Status(status).Render(web.IndexTemplate, fiber.Map{
		"Title":      AppTitle,
		"Accept":     strings.Join(models.SupportedExtensions, ","),
		"FileName":   data.FileName,
		"ResumeText": data.ResumeText,
		"Error":      data.Error,
		"Analysis":   data.Analysis,
		"AnalysisOK": data.AnalysisOK,
	})
}

// HandleIndex handles GET /
func HandleIndex(c *fiber.Ctx) error {
	return renderPage(c, fiber.StatusOK, pageData{})
}

func jsonError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Error: message,
		Code:  status,
	})
}
