package fastq_qcsum

import (
	"bytes"

	"gonum.org/v1/gonum/floats"
)

type Adapter struct {
	Name     string
	Sequence string
}

// Built-in adapter catalog. Order is significant: hit slices are indexed by it.
var adapterCatalog = [...]Adapter{
	{Name: "Illumina Universal Adapter", Sequence: "AGATCGGAAGAG"},
	{Name: "Illumina Small RNA 3' Adapter", Sequence: "TGGAATTCTCGG"},
	{Name: "Illumina Small RNA 5' Adapter", Sequence: "GATCGTCGGACT"},
	{Name: "Nextera Transposase Sequence", Sequence: "CTGTCTCTTATA"},
}

// DefaultAdapters returns a copy of the built-in catalog.
func DefaultAdapters() []Adapter {
	out := make([]Adapter, len(adapterCatalog))
	copy(out, adapterCatalog[:])
	return out
}

type AdapterHits struct {
	Adapter    Adapter
	Count      int
	Proportion float64 // Count / reads
}

// ScanAdapters counts, per adapter, the reads that start or end with it.
// Matching is exact and case-sensitive; an adapter found only in the middle of
// a read is not counted. A read counts at most once per adapter.
func ScanAdapters(m SequenceMatrix, adapters []Adapter) []AdapterHits {
	patterns := make([][]byte, len(adapters))
	hits := make([]AdapterHits, len(adapters))
	for i, a := range adapters {
		patterns[i] = []byte(a.Sequence)
		hits[i].Adapter = a
	}

	for r := 0; r < m.Reads(); r++ {
		row := m.Row(r)
		for i, p := range patterns {
			if bytes.HasPrefix(row, p) || bytes.HasSuffix(row, p) {
				hits[i].Count++
			}
		}
	}

	if m.Reads() > 0 {
		for i := range hits {
			hits[i].Proportion = float64(hits[i].Count) / float64(m.Reads())
		}
	}
	return hits
}

// MaxAdapterProportion is the adapter content statistic; 0 for an empty catalog.
func MaxAdapterProportion(hits []AdapterHits) float64 {
	if len(hits) == 0 {
		return 0
	}
	props := make([]float64, len(hits))
	for i, h := range hits {
		props[i] = h.Proportion
	}
	return floats.Max(props)
}
