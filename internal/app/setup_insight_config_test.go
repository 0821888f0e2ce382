package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultInsightWorkerConfig(t *testing.T) {
	cfg := DefaultInsightWorkerConfig()

	assert.Positive(t, cfg.JobTimeout)
	assert.Greater(t, cfg.Concurrency, 1)
}
