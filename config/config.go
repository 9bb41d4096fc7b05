// Package config holds the QC thresholds and output options, unmarshalled
// from Viper (flags, FASTQSTATS_* environment, optional config file).
package config

import (
	"fmt"
	"math"

	"github.com/spf13/viper"
)

// Thresholds are the warn/fail pairs for the four QC metrics.
// Quality metrics are "lower is worse" (fail < warn); content metrics are
// "higher is worse" (fail > warn).
type Thresholds struct {
	BaseQualityWarn float64 `mapstructure:"base-quality-warn" json:"base_quality_warn"`
	BaseQualityFail float64 `mapstructure:"base-quality-fail" json:"base_quality_fail"`
	BaseContentWarn float64 `mapstructure:"base-content-warn" json:"base_content_warn"`
	BaseContentFail float64 `mapstructure:"base-content-fail" json:"base_content_fail"`
	ReadQualityWarn float64 `mapstructure:"read-quality-warn" json:"read_quality_warn"`
	ReadQualityFail float64 `mapstructure:"read-quality-fail" json:"read_quality_fail"`
	AdapterWarn     float64 `mapstructure:"adapter-warn" json:"adapter_warn"`
	AdapterFail     float64 `mapstructure:"adapter-fail" json:"adapter_fail"`
}

// Options control which report files are written and where.
type Options struct {
	OutDir  string `mapstructure:"out-dir"`
	CSV     bool   `mapstructure:"csv"`
	JSON    bool   `mapstructure:"json"`
	Plots   bool   `mapstructure:"plots"`
	NoColor bool   `mapstructure:"no-color"`
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		BaseQualityWarn: 28,
		BaseQualityFail: 20,
		BaseContentWarn: 0.10,
		BaseContentFail: 0.20,
		ReadQualityWarn: 28,
		ReadQualityFail: 20,
		AdapterWarn:     0.05,
		AdapterFail:     0.10,
	}
}

// SetDefaults registers the default thresholds and options on v.
func SetDefaults(v *viper.Viper) {
	d := DefaultThresholds()
	v.SetDefault("base-quality-warn", d.BaseQualityWarn)
	v.SetDefault("base-quality-fail", d.BaseQualityFail)
	v.SetDefault("base-content-warn", d.BaseContentWarn)
	v.SetDefault("base-content-fail", d.BaseContentFail)
	v.SetDefault("read-quality-warn", d.ReadQualityWarn)
	v.SetDefault("read-quality-fail", d.ReadQualityFail)
	v.SetDefault("adapter-warn", d.AdapterWarn)
	v.SetDefault("adapter-fail", d.AdapterFail)
	v.SetDefault("out-dir", ".")
}

// Load unmarshals thresholds and options out of v and validates the thresholds.
func Load(v *viper.Viper) (Thresholds, Options, error) {
	var t Thresholds
	var o Options
	if err := v.Unmarshal(&t); err != nil {
		return t, o, fmt.Errorf("unable to decode thresholds: %w", err)
	}
	if err := v.Unmarshal(&o); err != nil {
		return t, o, fmt.Errorf("unable to decode options: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, o, err
	}
	return t, o, nil
}

// Validate rejects non-finite thresholds and inverted warn/fail pairs.
// Equal pairs are allowed: the Warning band is then empty.
func (t Thresholds) Validate() error {
	pairs := []struct {
		name         string
		warn, fail   float64
		lowerIsWorse bool
	}{
		{"base-quality", t.BaseQualityWarn, t.BaseQualityFail, true},
		{"base-content", t.BaseContentWarn, t.BaseContentFail, false},
		{"read-quality", t.ReadQualityWarn, t.ReadQualityFail, true},
		{"adapter", t.AdapterWarn, t.AdapterFail, false},
	}
	for _, p := range pairs {
		for _, x := range []float64{p.warn, p.fail} {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("%s threshold must be finite, got %v", p.name, x)
			}
		}
		if p.lowerIsWorse && p.fail > p.warn {
			return fmt.Errorf("%s-fail (%v) must not exceed %s-warn (%v)", p.name, p.fail, p.name, p.warn)
		}
		if !p.lowerIsWorse && p.fail < p.warn {
			return fmt.Errorf("%s-fail (%v) must not be below %s-warn (%v)", p.name, p.fail, p.name, p.warn)
		}
	}
	return nil
}
