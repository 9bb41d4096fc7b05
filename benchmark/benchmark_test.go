package benchmark

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)

	called := false
	err := Run(logger, "unit", func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Contains(t, buf.String(), "[Benchmark] Running: unit")
	assert.Contains(t, buf.String(), "[Benchmark] Time Elapsed:")
}

func TestRunPropagatesError(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("boom")

	err := Run(log.New(&buf, "", 0), "failing", func() error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, buf.String(), "[Benchmark] GC Cycles:")
}
