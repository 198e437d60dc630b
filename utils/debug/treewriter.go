// Package debug has helpers producing human readable dumps of parsed
// structures for debug reports.
package debug

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

const defaultIndent = "  "

// TreeWriter accumulates indented lines, one level of nesting per depth.
type TreeWriter struct {
	sb     *strings.Builder
	indent string
}

// TreeOption configures TreeWriter.
type TreeOption func(*TreeWriter)

// WithIndent replaces default two space indentation step.
func WithIndent(indent string) TreeOption {
	return func(tw *TreeWriter) {
		tw.indent = indent
	}
}

func NewTreeWriter(opts ...TreeOption) *TreeWriter {
	tw := &TreeWriter{
		sb:     &strings.Builder{},
		indent: defaultIndent,
	}
	for _, setOpt := range opts {
		setOpt(tw)
	}
	return tw
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.sb.WriteString(tw.indent)
	}
}

// Line writes formatted line at the given depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.sb, format, args...)
	tw.sb.WriteByte('\n')
}

// TextBlock writes "label: value" line with value quoted so whitespace and
// control characters stay visible. Empty values are left empty.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.sb.WriteString(label)
	tw.sb.WriteString(": ")
	tw.sb.WriteString(encodeText(value))
	tw.sb.WriteByte('\n')
}

// Len returns number of bytes accumulated so far.
func (tw *TreeWriter) Len() int {
	return tw.sb.Len()
}

func (tw *TreeWriter) String() string {
	return tw.sb.String()
}

// WriteTo implements io.WriterTo.
func (tw *TreeWriter) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, tw.sb.String())
	return int64(n), err
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
