package fastq_qcsum

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PerPositionMedians returns the median score of every column.
// An even column takes the mean of its two middle values.
func PerPositionMedians(m ScoreMatrix) ([]float64, error) {
	if m.Reads() == 0 || m.Len() == 0 {
		return nil, inputErr(ErrNoData, 0, "no scores for per-base quality")
	}
	medians := make([]float64, m.Len())
	column := make([]float64, m.Reads())
	for j := 0; j < m.Len(); j++ {
		for i := 0; i < m.Reads(); i++ {
			column[i] = float64(m.At(i, j))
		}
		medians[j] = median(column)
	}
	return medians, nil
}

// median sorts values in place.
func median(values []float64) float64 {
	sort.Float64s(values)
	n := len(values)
	if n%2 == 1 {
		return values[n/2]
	}
	return (values[n/2-1] + values[n/2]) / 2
}

// MinMedian is the per-base quality statistic: the worst position's median.
// It is NaN when medians is empty.
func MinMedian(medians []float64) float64 {
	if len(medians) == 0 {
		return math.NaN()
	}
	return floats.Min(medians)
}

// PerReadMeans returns the mean score of every read.
func PerReadMeans(m ScoreMatrix) ([]float64, error) {
	if m.Reads() == 0 || m.Len() == 0 {
		return nil, inputErr(ErrNoData, 0, "no scores for per-read quality")
	}
	means := make([]float64, m.Reads())
	row := make([]float64, m.Len())
	for i := 0; i < m.Reads(); i++ {
		for j, q := range m.Row(i) {
			row[j] = float64(q)
		}
		means[i] = stat.Mean(row, nil)
	}
	return means, nil
}

// MeanReadQuality is the per-read quality statistic: the mean of the read means,
// rounded half to even.
func MeanReadQuality(means []float64) float64 {
	return math.RoundToEven(stat.Mean(means, nil))
}
