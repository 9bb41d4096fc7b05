package fastq_qcsum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const universal = "AGATCGGAAGAG"

func counts(hits []AdapterHits) []int {
	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.Count
	}
	return out
}

func TestDefaultAdaptersOrder(t *testing.T) {
	adapters := DefaultAdapters()
	require.Len(t, adapters, 4)
	assert.Equal(t, []string{"AGATCGGAAGAG", "TGGAATTCTCGG", "GATCGTCGGACT", "CTGTCTCTTATA"},
		[]string{adapters[0].Sequence, adapters[1].Sequence, adapters[2].Sequence, adapters[3].Sequence})

	adapters[0].Sequence = "NNNN"
	assert.Equal(t, universal, DefaultAdapters()[0].Sequence)
}

func TestScanAdaptersExactRead(t *testing.T) {
	hits := ScanAdapters(sequences(t, universal), DefaultAdapters())
	assert.Equal(t, []int{1, 0, 0, 0}, counts(hits))
	assert.Equal(t, "Illumina Universal Adapter", hits[0].Adapter.Name)
	assert.Equal(t, 1.0, hits[0].Proportion)
}

func TestScanAdaptersAnchors(t *testing.T) {
	tests := []struct {
		name string
		read string
		want []int
	}{
		{"prefix", universal + "TTTTTTTT", []int{1, 0, 0, 0}},
		{"suffix", "TTTTTTTT" + "CTGTCTCTTATA", []int{0, 0, 0, 1}},
		{"middle only", "TTTT" + universal + "TTTT", []int{0, 0, 0, 0}},
		{"prefix and suffix count once", universal + "CC" + universal, []int{1, 0, 0, 0}},
		{"lowercase", "agatcggaagagTTTT", []int{0, 0, 0, 0}},
		{"one mismatch", "AGATCGGAAGAT" + "TTTT", []int{0, 0, 0, 0}},
		{"shorter than adapter", "AGATCG", []int{0, 0, 0, 0}},
		{"two adapters", "TGGAATTCTCGG" + "AA" + "GATCGTCGGACT", []int{0, 1, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := ScanAdapters(sequences(t, tt.read), DefaultAdapters())
			assert.Equal(t, tt.want, counts(hits))
		})
	}
}

func TestScanAdaptersProportion(t *testing.T) {
	m := sequences(t,
		universal+"AAAA",
		"AAAAAAAAAAAAAAAA",
		"AAAA"+"CTGTCTCTTATA",
		"CCCCCCCCCCCCCCCC",
	)
	hits := ScanAdapters(m, DefaultAdapters())
	assert.Equal(t, []int{1, 0, 0, 1}, counts(hits))
	assert.Equal(t, 0.25, hits[0].Proportion)
	assert.Equal(t, 0.25, MaxAdapterProportion(hits))
	assert.Equal(t, 0.0, MaxAdapterProportion(nil))
}
