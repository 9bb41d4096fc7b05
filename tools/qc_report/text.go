// Package qc_report writes a fastq_qcsum Summary to disk: the plain-text
// summary, and optionally a per-position CSV, a JSON dump and SVG plots.
package qc_report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Thorn95/fastqstats/tools/fastq_qcsum"
)

// OutputPath builds "<dir>/<filename><suffix>".
func OutputPath(dir, filename, suffix string) string {
	return filepath.Join(dir, filename+suffix)
}

// FormatText renders the summary in the fixed text layout.
func FormatText(w io.Writer, s *fastq_qcsum.Summary) error {
	st := s.Stats
	lines := []string{
		" Summary ",
		"Filename: " + s.Filename,
		"Total Sequences: " + strconv.Itoa(st.TotalReads),
		"Total Bases: " + strconv.FormatFloat(st.TotalMbp, 'f', -1, 64) + "Mbp",
		"Average Length: " + strconv.Itoa(st.AvgLength) + "bp",
		fmt.Sprintf("GC content: %.2f%%", st.GCContent),
	}
	for _, v := range s.Verdicts {
		lines = append(lines, fmt.Sprintf("%s: %s ", v.Metric, v.Verdict))
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes <filename>_summary.txt into dir and returns its path.
func WriteText(dir string, s *fastq_qcsum.Summary) (string, error) {
	path := OutputPath(dir, s.Filename, "_summary.txt")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := FormatText(f, s); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, f.Close()
}
