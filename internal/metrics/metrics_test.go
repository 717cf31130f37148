package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCaptureExtraction(t *testing.T) {
	before := testutil.ToFloat64(extractionsTotal.WithLabelValues("pdf", StatusSuccess))

	CaptureExtraction("pdf", StatusSuccess, 20*time.Millisecond)

	after := testutil.ToFloat64(extractionsTotal.WithLabelValues("pdf", StatusSuccess))
	assert.Equal(t, before+1, after)
}

func TestCaptureAnalysis(t *testing.T) {
	before := testutil.ToFloat64(analysesTotal.WithLabelValues(StatusFailed))

	CaptureAnalysis(StatusFailed)
	CaptureAnalysis(StatusFailed)

	assert.Equal(t, before+2, testutil.ToFloat64(analysesTotal.WithLabelValues(StatusFailed)))
}
