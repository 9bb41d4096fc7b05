// Package fastq_qcsum computes quality-control summary statistics for a FASTQ
// file and bands them into PASS / Warning / FAIL verdicts.
//
// The pipeline is: ParseLines → (BaseFrequencies, ScanAdapters,
// PerPositionMedians/PerReadMeans) → Assemble. Everything is computed in one
// pass over a file held fully in memory and nothing is returned on error.
package fastq_qcsum

import (
	"math"
	"path/filepath"

	"github.com/Thorn95/fastqstats/config"
)

// StatsFastq reads the FASTQ file at path and returns its QC summary.
func StatsFastq(path string, t config.Thresholds) (*Summary, error) {
	lines, err := ReadFastq(path)
	if err != nil {
		return nil, err
	}
	summary, err := Analyze(filepath.Base(path), lines, t)
	if err != nil {
		return nil, withFile(err, path)
	}
	return summary, nil
}

// Analyze runs the pipeline over already loaded FASTQ lines.
func Analyze(name string, lines []string, t config.Thresholds) (*Summary, error) {
	seqs, quals, err := ParseLines(lines)
	if err != nil {
		return nil, err
	}

	comp, err := BaseFrequencies(seqs)
	if err != nil {
		return nil, err
	}
	gc, err := GCContent(seqs)
	if err != nil {
		return nil, err
	}
	medians, err := PerPositionMedians(quals)
	if err != nil {
		return nil, err
	}
	readMeans, err := PerReadMeans(quals)
	if err != nil {
		return nil, err
	}

	reads := seqs.Reads()
	avgLen := int(math.RoundToEven(float64(seqs.Size()) / float64(reads)))

	stats := Stats{
		TotalReads:    reads,
		AvgLength:     avgLen,
		TotalMbp:      float64(reads*avgLen) / 1e6,
		GCContent:     gc,
		MinMedianQual: MinMedian(medians),
		MaxSpread:     MaxSpread(comp),
		ReadQuality:   MeanReadQuality(readMeans),
		Adapters:      ScanAdapters(seqs, DefaultAdapters()),
		Medians:       medians,
		Composition:   comp,
	}
	return Assemble(name, stats, t), nil
}
