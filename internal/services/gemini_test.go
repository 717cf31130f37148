package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"alfredoptarigan/resume-analyzer/internal/config"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) GeminiService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := newGeminiService(context.Background(), config.GeminiConfig{
		APIKey:          "test-key",
		Model:           "gemini-2.5-flash",
		Temperature:     0.4,
		MaxOutputTokens: 256,
	}, genai.HTTPOptions{BaseURL: server.URL + "/"})
	require.NoError(t, err)
	return svc
}

func TestGeminiService_GenerateText(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Strengths: clear impact"}]},"finishReason":"STOP"}]}`))
	})

	text, err := svc.GenerateText(context.Background(), "review this resume")

	require.NoError(t, err)
	assert.Equal(t, "Strengths: clear impact", text)
	assert.True(t, strings.HasSuffix(gotPath, "models/gemini-2.5-flash:generateContent"), gotPath)
	assert.Contains(t, gotBody, "contents")
}

func TestGeminiService_APIError(t *testing.T) {
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
	})

	text, err := svc.GenerateText(context.Background(), "review this resume")

	require.Error(t, err)
	assert.Empty(t, text)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGeminiService_EmptyCandidates(t *testing.T) {
	svc := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"finishReason":"SAFETY"}]}`))
	})

	text, err := svc.GenerateText(context.Background(), "review this resume")

	require.Error(t, err)
	assert.Empty(t, text)
	assert.Contains(t, err.Error(), "SAFETY")
}

func TestNewGeminiService_RequiresKey(t *testing.T) {
	_, err := NewGeminiService(config.GeminiConfig{Model: "gemini-2.5-flash"})
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}
