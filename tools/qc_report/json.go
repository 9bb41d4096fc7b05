package qc_report

import (
	"encoding/json"
	"os"

	"github.com/Thorn95/fastqstats/config"
	"github.com/Thorn95/fastqstats/tools/fastq_qcsum"
)

type jsonAdapter struct {
	Name       string  `json:"name"`
	Sequence   string  `json:"sequence"`
	Count      int     `json:"count"`
	Proportion float64 `json:"proportion"`
}

type jsonVerdict struct {
	Metric  fastq_qcsum.Metric  `json:"metric"`
	Value   float64             `json:"value"`
	Warn    float64             `json:"warn"`
	Fail    float64             `json:"fail"`
	Verdict fastq_qcsum.Verdict `json:"verdict"`
}

type jsonSummary struct {
	Filename      string            `json:"filename"`
	TotalReads    int               `json:"total_sequences"`
	TotalMbp      float64           `json:"total_bases_mbp"`
	AvgLength     int               `json:"average_length"`
	GCContent     float64           `json:"gc_content"`
	MinMedianQual float64           `json:"min_median_quality"`
	MaxSpread     float64           `json:"max_base_content_spread"`
	ReadQuality   float64           `json:"mean_read_quality"`
	Adapters      []jsonAdapter     `json:"adapters"`
	Thresholds    config.Thresholds `json:"thresholds"`
	Verdicts      []jsonVerdict     `json:"verdicts"`
}

func toJSON(s *fastq_qcsum.Summary) jsonSummary {
	st := s.Stats
	out := jsonSummary{
		Filename:      s.Filename,
		TotalReads:    st.TotalReads,
		TotalMbp:      st.TotalMbp,
		AvgLength:     st.AvgLength,
		GCContent:     st.GCContent,
		MinMedianQual: st.MinMedianQual,
		MaxSpread:     st.MaxSpread,
		ReadQuality:   st.ReadQuality,
		Thresholds:    s.Thresholds,
	}
	for _, h := range st.Adapters {
		out.Adapters = append(out.Adapters, jsonAdapter{
			Name:       h.Adapter.Name,
			Sequence:   h.Adapter.Sequence,
			Count:      h.Count,
			Proportion: h.Proportion,
		})
	}
	for _, v := range s.Verdicts {
		out.Verdicts = append(out.Verdicts, jsonVerdict{
			Metric:  v.Metric,
			Value:   v.Value,
			Warn:    v.Warn,
			Fail:    v.Fail,
			Verdict: v.Verdict,
		})
	}
	return out
}

// WriteJSON writes <filename>_summary.json.
func WriteJSON(dir string, s *fastq_qcsum.Summary) (string, error) {
	path := OutputPath(dir, s.Filename, "_summary.json")
	bts, err := json.MarshalIndent(toJSON(s), "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, append(bts, '\n'), 0644); err != nil {
		return "", err
	}
	return path, nil
}
