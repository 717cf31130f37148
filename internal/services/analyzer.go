package services

import (
	"context"
	"log"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/metrics"
	"alfredoptarigan/resume-analyzer/internal/models"
)

const (
	NoTextWarning       = "⚠️ No text found in the resume. Please upload a valid resume."
	AnalysisErrorPrefix = "⚠️ Error analyzing resume: "
)

type AnalyzerService interface {
	Analyze(ctx context.Context, resumeText string) models.Analysis
}

type analyzerService struct {
	geminiService GeminiService
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(geminiService GeminiService) AnalyzerService {
	return &analyzerService{
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
	}
}

// Analyze never fails outright: the returned Feedback is always displayable.
func (a *analyzerService) Analyze(ctx context.Context, resumeText string) models.Analysis {
	if strings.TrimSpace(resumeText) == "" {
		metrics.CaptureAnalysis(metrics.StatusEmpty)
		return models.Analysis{Feedback: NoTextWarning, Err: ErrEmptyResume}
	}

	prompt := a.promptBuilder.BuildResumeReviewPrompt(resumeText)
	log.Printf("📝 Resume review prompt length: %d characters", len(prompt))

	response, err := a.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		metrics.CaptureAnalysis(metrics.StatusFailed)
		log.Printf("❌ Resume analysis failed: %v", err)
		return models.Analysis{Feedback: AnalysisErrorPrefix + err.Error(), Err: err}
	}

	metrics.CaptureAnalysis(metrics.StatusSuccess)
	return models.Analysis{Feedback: response}
}
