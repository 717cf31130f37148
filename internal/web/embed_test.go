package web

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine_RendersIndex(t *testing.T) {
	engine, err := NewEngine()
	require.NoError(t, err)
	require.NoError(t, engine.Load())

	var out bytes.Buffer
	err = engine.Render(&out, IndexTemplate, map[string]any{
		"Title":      "Resume Analyzer",
		"Accept":     ".pdf,.docx",
		"ResumeText": "<b>Go</b> engineer",
		"Analysis":   "Strengths: ...",
		"AnalysisOK": true,
	})
	require.NoError(t, err)

	html := out.String()
	assert.Contains(t, html, "<title>Resume Analyzer</title>")
	assert.Contains(t, html, "&lt;b&gt;Go&lt;/b&gt; engineer")
	assert.Contains(t, html, `<div class="analysis">Strengths: ...</div>`)
}
