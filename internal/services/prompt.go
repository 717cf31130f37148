package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeReviewPrompt embeds the resume text verbatim.
func (pb *PromptBuilder) BuildResumeReviewPrompt(resumeText string) string {
	return fmt.Sprintf(`You are an AI-powered resume reviewer. Analyze the following resume and provide:
1. Strengths
2. Weaknesses
3. Suggestions for improvement

Label each section exactly "Strengths:", "Weaknesses:" and "Suggestions:".

Resume Text:
%s`, resumeText)
}
