package fastq_qcsum

import "github.com/Thorn95/fastqstats/config"

type Verdict int

const (
	Pass Verdict = iota
	Warning
	Fail
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "PASS"
	case Warning:
		return "Warning"
	case Fail:
		return "FAIL"
	}
	return "UNKNOWN"
}

func (v Verdict) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// Direction tells the classifier which side of a threshold is bad.
type Direction int

const (
	LowerIsWorse Direction = iota
	HigherIsWorse
)

// Classify bands a value against its warn/fail thresholds. Comparisons are
// strict: a value equal to a threshold falls into the less severe band.
func Classify(value, warn, fail float64, dir Direction) Verdict {
	if dir == LowerIsWorse {
		switch {
		case value < fail:
			return Fail
		case value < warn:
			return Warning
		}
		return Pass
	}
	switch {
	case value > fail:
		return Fail
	case value > warn:
		return Warning
	}
	return Pass
}

type Metric int

const (
	PerBaseQuality Metric = iota
	PerBaseContent
	PerReadQuality
	AdapterContent
)

var metricNames = [...]string{
	PerBaseQuality: "Per Base Sequence Quality",
	PerBaseContent: "Per Base Sequence Content",
	PerReadQuality: "Per Read Quality",
	AdapterContent: "Adapter Content",
}

func (m Metric) String() string {
	if int(m) < 0 || int(m) >= len(metricNames) {
		return "Unknown Metric"
	}
	return metricNames[m]
}

// Metrics lists the metrics in report order.
func Metrics() []Metric {
	return []Metric{PerBaseQuality, PerBaseContent, PerReadQuality, AdapterContent}
}

func (m Metric) Direction() Direction {
	if m == PerBaseContent || m == AdapterContent {
		return HigherIsWorse
	}
	return LowerIsWorse
}

// Thresholds picks the metric's warn/fail pair out of the configuration.
func (m Metric) Thresholds(t config.Thresholds) (warn, fail float64) {
	switch m {
	case PerBaseQuality:
		return t.BaseQualityWarn, t.BaseQualityFail
	case PerBaseContent:
		return t.BaseContentWarn, t.BaseContentFail
	case PerReadQuality:
		return t.ReadQualityWarn, t.ReadQualityFail
	case AdapterContent:
		return t.AdapterWarn, t.AdapterFail
	}
	return 0, 0
}

func (m Metric) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
