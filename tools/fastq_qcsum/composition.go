package fastq_qcsum

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// CanonicalBases are the only codes counted toward per-position composition.
var CanonicalBases = [4]byte{'A', 'C', 'G', 'T'}

// PositionComposition is the A/C/G/T make-up of one read position.
type PositionComposition struct {
	Position int        // 0-based
	Freq     [4]float64 // indexed like CanonicalBases
	Spread   float64    // max(Freq) - min(Freq)
}

// BaseFrequencies computes per-position A/C/G/T frequencies and their spread.
// Symbols outside A/C/G/T (N, lowercase, ...) are left out of both numerator and
// denominator. A position with no canonical base at all is an ErrNoData.
func BaseFrequencies(m SequenceMatrix) ([]PositionComposition, error) {
	if m.Reads() == 0 || m.Len() == 0 {
		return nil, inputErr(ErrNoData, 0, "no bases for composition analysis")
	}

	counts := make([][4]int, m.Len())
	for i := 0; i < m.Reads(); i++ {
		for j, code := range m.Row(i) {
			switch code {
			case 'A':
				counts[j][0]++
			case 'C':
				counts[j][1]++
			case 'G':
				counts[j][2]++
			case 'T':
				counts[j][3]++
			}
		}
	}

	out := make([]PositionComposition, m.Len())
	for j, c := range counts {
		total := c[0] + c[1] + c[2] + c[3]
		if total == 0 {
			return nil, inputErr(ErrNoData, 0, "position %d has no A/C/G/T calls", j+1)
		}
		pc := PositionComposition{Position: j}
		for b := range c {
			pc.Freq[b] = float64(c[b]) / float64(total)
		}
		pc.Spread = floats.Max(pc.Freq[:]) - floats.Min(pc.Freq[:])
		out[j] = pc
	}
	return out, nil
}

// MaxSpread is the largest per-position spread, the per-base content statistic.
// It is NaN when comp is empty.
func MaxSpread(comp []PositionComposition) float64 {
	if len(comp) == 0 {
		return math.NaN()
	}
	spreads := make([]float64, len(comp))
	for i, pc := range comp {
		spreads[i] = pc.Spread
	}
	return floats.Max(spreads)
}

// GCContent is the percentage of G and C among all cells (N included in the
// total), rounded to two decimals from the exact stored value, so 2.675 (held
// as 2.67499...) becomes 2.67.
func GCContent(m SequenceMatrix) (float64, error) {
	if m.Size() == 0 {
		return 0, inputErr(ErrNoData, 0, "no bases for GC content")
	}
	gc := 0
	for i := 0; i < m.Reads(); i++ {
		for _, code := range m.Row(i) {
			if code == 'G' || code == 'C' {
				gc++
			}
		}
	}
	pct := float64(gc) / float64(m.Size()) * 100
	return strconv.ParseFloat(strconv.FormatFloat(pct, 'f', 2, 64), 64)
}
