package fastq_qcsum

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Thorn95/fastqstats/config"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		value      float64
		warn, fail float64
		dir        Direction
		want       Verdict
	}{
		{"lower: well above warn", 40, 28, 20, LowerIsWorse, Pass},
		{"lower: equal to warn", 28, 28, 20, LowerIsWorse, Pass},
		{"lower: just below warn", 27.9, 28, 20, LowerIsWorse, Warning},
		{"lower: equal to fail", 20, 28, 20, LowerIsWorse, Warning},
		{"lower: below fail", 19.99, 28, 20, LowerIsWorse, Fail},
		{"higher: well below warn", 0.01, 0.10, 0.20, HigherIsWorse, Pass},
		{"higher: equal to warn", 0.10, 0.10, 0.20, HigherIsWorse, Pass},
		{"higher: above warn", 0.15, 0.10, 0.20, HigherIsWorse, Warning},
		{"higher: equal to fail", 0.20, 0.10, 0.20, HigherIsWorse, Warning},
		{"higher: above fail", 1.0, 0.10, 0.20, HigherIsWorse, Fail},
		{"collapsed band", 25, 20, 20, LowerIsWorse, Pass},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.value, tt.warn, tt.fail, tt.dir))
		})
	}
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "PASS", Pass.String())
	assert.Equal(t, "Warning", Warning.String())
	assert.Equal(t, "FAIL", Fail.String())
}

func TestMetrics(t *testing.T) {
	ms := Metrics()
	assert.Equal(t, []string{
		"Per Base Sequence Quality",
		"Per Base Sequence Content",
		"Per Read Quality",
		"Adapter Content",
	}, []string{ms[0].String(), ms[1].String(), ms[2].String(), ms[3].String()})

	assert.Equal(t, LowerIsWorse, PerBaseQuality.Direction())
	assert.Equal(t, HigherIsWorse, PerBaseContent.Direction())
	assert.Equal(t, LowerIsWorse, PerReadQuality.Direction())
	assert.Equal(t, HigherIsWorse, AdapterContent.Direction())

	warn, fail := AdapterContent.Thresholds(config.DefaultThresholds())
	assert.Equal(t, 0.05, warn)
	assert.Equal(t, 0.10, fail)
}
