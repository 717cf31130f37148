package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildResumeReviewPrompt(t *testing.T) {
	pb := NewPromptBuilder()
	resume := "Jane Doe\n  Go, PostgreSQL, 100% uptime  "

	prompt := pb.BuildResumeReviewPrompt(resume)

	assert.Equal(t, prompt, pb.BuildResumeReviewPrompt(resume))
	assert.Contains(t, prompt, "Resume Text:\n"+resume)
	assert.Contains(t, prompt, "Strengths")
	assert.Contains(t, prompt, "Weaknesses")
	assert.Contains(t, prompt, "Suggestions for improvement")
}
