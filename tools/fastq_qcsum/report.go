package fastq_qcsum

import (
	"math"

	"github.com/Thorn95/fastqstats/config"
)

// Stats are the raw facts computed from one FASTQ file.
type Stats struct {
	TotalReads    int
	AvgLength     int     // bp, rounded half to even
	TotalMbp      float64 // TotalReads * AvgLength / 1e6
	GCContent     float64 // percent, two decimals
	MinMedianQual float64 // worst per-position median score
	MaxSpread     float64 // worst per-position A/C/G/T frequency spread
	ReadQuality   float64 // mean of per-read means, rounded half to even
	Adapters      []AdapterHits

	// Per-position detail kept for CSV and plots.
	Medians     []float64
	Composition []PositionComposition
}

// MetricVerdict is one row of the assessment.
type MetricVerdict struct {
	Metric    Metric
	Value     float64
	Warn      float64
	Fail      float64
	Direction Direction `json:"-"`
	Verdict   Verdict
}

// Summary is everything the report writer needs.
type Summary struct {
	Filename   string
	Stats      Stats
	Thresholds config.Thresholds
	Verdicts   []MetricVerdict // in Metrics() order
}

// Value returns the statistic a metric is classified on.
func (s Stats) Value(m Metric) float64 {
	switch m {
	case PerBaseQuality:
		return s.MinMedianQual
	case PerBaseContent:
		return s.MaxSpread
	case PerReadQuality:
		return s.ReadQuality
	case AdapterContent:
		return MaxAdapterProportion(s.Adapters)
	}
	return math.NaN()
}

// Assemble classifies every metric and packages the result.
func Assemble(filename string, stats Stats, t config.Thresholds) *Summary {
	s := &Summary{Filename: filename, Stats: stats, Thresholds: t}
	for _, m := range Metrics() {
		warn, fail := m.Thresholds(t)
		value := stats.Value(m)
		s.Verdicts = append(s.Verdicts, MetricVerdict{
			Metric:    m,
			Value:     value,
			Warn:      warn,
			Fail:      fail,
			Direction: m.Direction(),
			Verdict:   Classify(value, warn, fail, m.Direction()),
		})
	}
	return s
}

// Verdict looks up the verdict for one metric. ok is false when the summary
// holds no verdict for m.
func (s *Summary) Verdict(m Metric) (v Verdict, ok bool) {
	for _, mv := range s.Verdicts {
		if mv.Metric == m {
			return mv.Verdict, true
		}
	}
	return v, false
}
