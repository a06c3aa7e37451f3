// Package lvm reads LabVIEW measurement (.lvm) exports into
// frequency-response curves.
//
// The files this tool consumes are tab-separated two-column text: excitation
// frequency and the imaginary part of the transfer function, no column
// header beyond one general header row. Numbers use a decimal comma and the
// header text is Latin-1 encoded. The acquisition system writes the
// frequency column as 10×Hz, so it is scaled on load.
package lvm

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/modalkit/modalscan/pkg/frf"
)

// DefaultFrequencyScale converts the instrument's 10×Hz frequency column to
// Hz.
const DefaultFrequencyScale = 0.1

// Options controls how a measurement file is interpreted.
type Options struct {
	// FrequencyScale multiplies the frequency column on load.
	FrequencyScale float64
	// SkipRows is the number of leading header rows to discard.
	SkipRows int
}

// DefaultOptions returns the interpretation used by the acquisition setup
// that produced the survey data.
func DefaultOptions() Options {
	return Options{
		FrequencyScale: DefaultFrequencyScale,
		SkipRows:       1,
	}
}

// ParseError describes a malformed measurement file.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	loc := e.Path
	if loc == "" {
		loc = "lvm input"
	}
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", loc, e.Line)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", loc, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", loc, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// ReadFile loads one measurement file as a curve sorted ascending by
// frequency.
func ReadFile(path string, opts Options) (frf.Curve, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open measurement file: %w", err)
	}
	defer file.Close()

	curve, err := read(file, path, opts)
	if err != nil {
		return nil, err
	}
	return curve, nil
}

func read(file *os.File, path string, opts Options) (frf.Curve, error) {
	if opts.FrequencyScale == 0 {
		opts.FrequencyScale = DefaultFrequencyScale
	}

	scanner := bufio.NewScanner(transform.NewReader(file, charmap.ISO8859_1.NewDecoder()))

	var curve frf.Curve
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if line <= opts.SkipRows || text == "" {
			continue
		}

		fields := strings.Split(text, "\t")
		if len(fields) < 2 {
			return nil, &ParseError{
				Path:    path,
				Line:    line,
				Message: fmt.Sprintf("expected 2 tab-separated columns, got %d", len(fields)),
			}
		}

		freq, err := parseDecimalComma(fields[0])
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Message: "invalid frequency", Cause: err}
		}
		value, err := parseDecimalComma(fields[1])
		if err != nil {
			return nil, &ParseError{Path: path, Line: line, Message: "invalid value", Cause: err}
		}

		curve = append(curve, frf.Sample{
			Frequency: freq * opts.FrequencyScale,
			Value:     value,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Path: path, Message: "read failed", Cause: err}
	}

	curve.Sort()
	return curve, nil
}

func parseDecimalComma(field string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(field), ",", "."), 64)
}
