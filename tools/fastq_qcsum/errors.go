package fastq_qcsum

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound is returned when the FASTQ path does not resolve to a file.
	ErrInputNotFound = errors.New("input not found")
	// ErrMalformedInput is returned for empty files, a line count that is not a
	// multiple of 4, or a record whose lines are inconsistent.
	ErrMalformedInput = errors.New("malformed FASTQ input")
	// ErrRaggedInput is returned when reads differ in length.
	ErrRaggedInput = errors.New("reads of differing lengths")
	// ErrNoData is returned when there is nothing to compute a statistic over.
	ErrNoData = errors.New("no data")
)

// InputError ties one of the sentinel errors to the file (and line, when known)
// that triggered it.
type InputError struct {
	File   string
	Line   int // 1-based, 0 when not tied to a line
	Detail string
	Err    error
}

func (e *InputError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	switch {
	case e.File != "" && e.Line > 0:
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, msg)
	case e.File != "":
		return fmt.Sprintf("%s: %s", e.File, msg)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	return msg
}

func (e *InputError) Unwrap() error { return e.Err }

func inputErr(err error, line int, format string, args ...interface{}) *InputError {
	return &InputError{Line: line, Detail: fmt.Sprintf(format, args...), Err: err}
}

// withFile stamps the file name on an InputError produced before the name was known.
func withFile(err error, file string) error {
	var ie *InputError
	if errors.As(err, &ie) && ie.File == "" {
		ie.File = file
		return ie
	}
	if errors.Is(err, ErrNoData) || errors.Is(err, ErrMalformedInput) || errors.Is(err, ErrRaggedInput) {
		return &InputError{File: file, Err: err}
	}
	return err
}
