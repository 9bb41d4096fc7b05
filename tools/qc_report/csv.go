package qc_report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Thorn95/fastqstats/tools/fastq_qcsum"
)

var perPositionHeaders = []string{
	"Position", "MedianQuality", "A", "C", "G", "T", "Spread",
}

// WritePerPositionCSV writes <filename>_per_position.csv with one row per read
// position (1-based).
func WritePerPositionCSV(dir string, s *fastq_qcsum.Summary) (string, error) {
	path := OutputPath(dir, s.Filename, "_per_position.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(perPositionHeaders); err != nil {
		return "", err
	}

	st := s.Stats
	for i, pc := range st.Composition {
		row := []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.1f", st.Medians[i]),
			fmt.Sprintf("%.4f", pc.Freq[0]),
			fmt.Sprintf("%.4f", pc.Freq[1]),
			fmt.Sprintf("%.4f", pc.Freq[2]),
			fmt.Sprintf("%.4f", pc.Freq[3]),
			fmt.Sprintf("%.4f", pc.Spread),
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, f.Close()
}
