package fastq_qcsum

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Thorn95/fastqstats/config"
)

const polyA = `@r1
AAAAAAAAAA
+
IIIIIIIIII
@r2
AAAAAAAAAA
+
IIIIIIIIII
@r3
AAAAAAAAAA
+
IIIIIIIIII
@r4
AAAAAAAAAA
+
IIIIIIIIII
`

func writeFastq(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func verdictOf(t *testing.T, s *Summary, m Metric) Verdict {
	t.Helper()
	v, ok := s.Verdict(m)
	require.True(t, ok, "no verdict for %v", m)
	return v
}

func TestStatsFastqPolyA(t *testing.T) {
	path := writeFastq(t, "polyA.fastq", polyA)
	s, err := StatsFastq(path, config.DefaultThresholds())
	require.NoError(t, err)

	assert.Equal(t, "polyA.fastq", s.Filename)
	assert.Equal(t, 4, s.Stats.TotalReads)
	assert.Equal(t, 10, s.Stats.AvgLength)
	assert.InDelta(t, 4e-05, s.Stats.TotalMbp, 1e-15)
	assert.Equal(t, 0.0, s.Stats.GCContent)
	assert.Equal(t, 40.0, s.Stats.MinMedianQual)
	assert.Equal(t, 1.0, s.Stats.MaxSpread)
	assert.Equal(t, 40.0, s.Stats.ReadQuality)

	assert.Equal(t, Pass, verdictOf(t, s, PerBaseQuality))
	assert.Equal(t, Fail, verdictOf(t, s, PerBaseContent))
	assert.Equal(t, Pass, verdictOf(t, s, PerReadQuality))
	assert.Equal(t, Pass, verdictOf(t, s, AdapterContent))
}

func TestAnalyzeAdapterRead(t *testing.T) {
	lines := records([]string{universal}, []string{strings.Repeat("I", len(universal))})
	s, err := Analyze("adapter.fastq", lines, config.DefaultThresholds())
	require.NoError(t, err)

	require.Len(t, s.Stats.Adapters, 4)
	assert.Equal(t, 1, s.Stats.Adapters[0].Count)
	assert.Equal(t, "Illumina Universal Adapter", s.Stats.Adapters[0].Adapter.Name)
	assert.Equal(t, Fail, verdictOf(t, s, AdapterContent))
}

func TestAnalyzeWarnings(t *testing.T) {
	// Phred 25 everywhere ('+'+15 = ':'), balanced composition.
	lines := records(
		[]string{"ACGT", "CGTA", "GTAC", "TACG"},
		[]string{"::::", "::::", "::::", "::::"},
	)
	s, err := Analyze("mid.fastq", lines, config.DefaultThresholds())
	require.NoError(t, err)

	assert.Equal(t, 25.0, s.Stats.MinMedianQual)
	assert.Equal(t, 50.0, s.Stats.GCContent)
	assert.Equal(t, Warning, verdictOf(t, s, PerBaseQuality))
	assert.Equal(t, Pass, verdictOf(t, s, PerBaseContent))
	assert.Equal(t, Warning, verdictOf(t, s, PerReadQuality))
	assert.Equal(t, Pass, verdictOf(t, s, AdapterContent))
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	lines := records(
		[]string{"ACGTNACGTA", "TTGCAACGTT", "AGATCGGAAG"},
		[]string{"II?5+IIII#", "!!!!!IIIII", "?????55555"},
	)
	first, err := Analyze("x.fastq", lines, config.DefaultThresholds())
	require.NoError(t, err)
	second, err := Analyze("x.fastq", lines, config.DefaultThresholds())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStatsFastqErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"empty", "", ErrMalformedInput},
		{"three lines", "@r1\nACGT\n+\n", ErrMalformedInput},
		{"ragged", "@r1\nACGT\n+\nIIII\n@r2\nAC\n+\nII\n", ErrRaggedInput},
		{"all N", "@r1\nNNNN\n+\nIIII\n", ErrNoData},
		{"zero length reads", "@r1\n\n+\n\n", ErrNoData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFastq(t, "bad.fastq", tt.content)
			s, err := StatsFastq(path, config.DefaultThresholds())
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Contains(t, err.Error(), path)
		})
	}
}

func TestAssembleOrderAndThresholds(t *testing.T) {
	th := config.DefaultThresholds()
	th.BaseQualityWarn = 41
	stats := Stats{
		MinMedianQual: 40,
		MaxSpread:     0.05,
		ReadQuality:   20,
		Adapters:      []AdapterHits{{Proportion: 0.10}},
	}
	s := Assemble("f.fastq", stats, th)

	require.Len(t, s.Verdicts, 4)
	for i, m := range Metrics() {
		assert.Equal(t, m, s.Verdicts[i].Metric)
	}
	assert.Equal(t, Warning, s.Verdicts[0].Verdict)
	assert.Equal(t, 41.0, s.Verdicts[0].Warn)
	assert.Equal(t, Pass, s.Verdicts[1].Verdict)
	assert.Equal(t, Warning, s.Verdicts[2].Verdict)
	assert.Equal(t, Warning, s.Verdicts[3].Verdict)
	assert.Equal(t, 0.10, s.Verdicts[3].Value)
}

func TestSummaryVerdictLookup(t *testing.T) {
	s := Assemble("f.fastq", Stats{MinMedianQual: 10, ReadQuality: 40}, config.DefaultThresholds())

	tests := []struct {
		name   string
		metric Metric
		want   Verdict
		ok     bool
	}{
		{"known", PerBaseQuality, Fail, true},
		{"unknown metric", Metric(99), Pass, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := s.Verdict(tt.metric)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, v)
			}
		})
	}

	_, ok := (&Summary{}).Verdict(AdapterContent)
	assert.False(t, ok)
}
