package fastq_qcsum

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	common "github.com/Thorn95/fastqstats/utils"
)

// PhredOffset is the ASCII offset of Phred+33 quality strings.
const PhredOffset = 33

// SequenceMatrix holds one nucleotide code per cell, reads × positions.
// Cells are stored row-major in a single slice.
type SequenceMatrix struct {
	reads, length int
	codes         []byte
}

// ScoreMatrix has the same shape as SequenceMatrix and holds Phred scores.
type ScoreMatrix struct {
	reads, length int
	scores        []int
}

// Reads is the number of reads (rows).
func (m SequenceMatrix) Reads() int {
	return m.reads
}

// Len is the common read length (columns).
func (m SequenceMatrix) Len() int {
	return m.length
}

func (m SequenceMatrix) At(i, j int) byte {
	return m.codes[i*m.length+j]
}

// Row returns read i. The slice is capped so appending to it cannot clobber
// the next read.
func (m SequenceMatrix) Row(i int) []byte {
	start, end := i*m.length, (i+1)*m.length
	return m.codes[start:end:end]
}

// Size is the total number of base cells.
func (m SequenceMatrix) Size() int {
	return len(m.codes)
}

func (m ScoreMatrix) Reads() int {
	return m.reads
}

func (m ScoreMatrix) Len() int {
	return m.length
}

func (m ScoreMatrix) At(i, j int) int {
	return m.scores[i*m.length+j]
}

func (m ScoreMatrix) Row(i int) []int {
	start, end := i*m.length, (i+1)*m.length
	return m.scores[start:end:end]
}

// DecodeScore maps a quality character to its Phred score.
func DecodeScore(c byte) int { return int(c) - PhredOffset }

// EncodeScore maps a Phred score back to its quality character.
func EncodeScore(q int) byte { return byte(q + PhredOffset) }

// ReadFastq loads every line of a plain or gzip-compressed FASTQ file.
func ReadFastq(path string) ([]string, error) {
	reader, err := common.OpenInput(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &InputError{File: path, Err: ErrInputNotFound}
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer reader.Close()

	lines, err := common.ReadLines(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// ParseLines turns raw FASTQ lines into aligned sequence and score matrices.
// The input must hold whole 4-line records of one common read length.
func ParseLines(lines []string) (SequenceMatrix, ScoreMatrix, error) {
	var seqs SequenceMatrix
	var quals ScoreMatrix

	if len(lines) == 0 {
		return seqs, quals, inputErr(ErrMalformedInput, 0, "empty file")
	}
	if len(lines)%4 != 0 {
		return seqs, quals, inputErr(ErrMalformedInput, 0,
			"%d lines is not a multiple of 4", len(lines))
	}

	nReads := len(lines) / 4
	readLen := len(strings.TrimSpace(lines[1]))

	seqs = SequenceMatrix{reads: nReads, length: readLen, codes: make([]byte, 0, nReads*readLen)}
	quals = ScoreMatrix{reads: nReads, length: readLen, scores: make([]int, 0, nReads*readLen)}

	for r := 0; r < nReads; r++ {
		base := r * 4
		header := lines[base]
		seq := strings.TrimSpace(lines[base+1])
		plus := lines[base+2]
		qual := strings.TrimSpace(lines[base+3])

		if !strings.HasPrefix(header, "@") {
			return seqs, quals, inputErr(ErrMalformedInput, base+1, "header does not start with '@'")
		}
		if !strings.HasPrefix(plus, "+") {
			return seqs, quals, inputErr(ErrMalformedInput, base+3, "separator does not start with '+'")
		}
		if len(qual) != len(seq) {
			return seqs, quals, inputErr(ErrMalformedInput, base+4,
				"quality length %d does not match sequence length %d", len(qual), len(seq))
		}
		if len(seq) != readLen {
			return seqs, quals, inputErr(ErrRaggedInput, base+2,
				"read %d has length %d, first read has length %d", r+1, len(seq), readLen)
		}

		seqs.codes = append(seqs.codes, seq...)
		for i := 0; i < len(qual); i++ {
			if qual[i] < PhredOffset {
				return seqs, quals, inputErr(ErrMalformedInput, base+4,
					"quality character %q below Phred+33 range", qual[i])
			}
			quals.scores = append(quals.scores, DecodeScore(qual[i]))
		}
	}
	return seqs, quals, nil
}
