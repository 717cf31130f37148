package testutil

import (
	"context"
	"sync"
)

// MockGemini records prompts and answers through OnGenerateText when set.
type MockGemini struct {
	OnGenerateText func(ctx context.Context, prompt string) (string, error)

	mu      sync.Mutex
	prompts []string
}

func (m *MockGemini) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.prompts = append(m.prompts, prompt)
	m.mu.Unlock()

	if m.OnGenerateText != nil {
		return m.OnGenerateText(ctx, prompt)
	}
	return "Strengths: ...\nWeaknesses: ...\nSuggestions: ...", nil
}

func (m *MockGemini) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.prompts)
}

func (m *MockGemini) LastPrompt() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.prompts) == 0 {
		return ""
	}
	return m.prompts[len(m.prompts)-1]
}
