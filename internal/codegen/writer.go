// Package codegen holds a language-agnostic model of a class to be generated
// and the renderer that serializes it through a line-oriented writer.
package codegen

import "strings"

// Writer accumulates lines of text at a controllable indentation depth.
type Writer interface {
	// WriteLine appends a line prefixed with the current indentation.
	// An empty line is written as a blank line with no prefix.
	WriteLine(line string)
	Indent()
	Outdent()
	String() string
}

// LineWriter is the default Writer. The zero value indents with a tab.
type LineWriter struct {
	indent string
	depth  int
	lines  []string
}

// NewLineWriter creates a LineWriter that repeats indent once per level.
func NewLineWriter(indent string) *LineWriter {
	return &LineWriter{indent: indent}
}

// WriteLine appends a line at the current depth.
func (w *LineWriter) WriteLine(line string) {
	if line == "" {
		w.lines = append(w.lines, "")
		return
	}
	w.lines = append(w.lines, strings.Repeat(w.unit(), w.depth)+line)
}

// Indent increases the depth by one level.
func (w *LineWriter) Indent() {
	w.depth++
}

// Outdent decreases the depth by one level. Depth never goes below zero.
func (w *LineWriter) Outdent() {
	if w.depth > 0 {
		w.depth--
	}
}

// Depth returns the current indentation depth.
func (w *LineWriter) Depth() int {
	return w.depth
}

// String returns the accumulated text, newline terminated.
func (w *LineWriter) String() string {
	if len(w.lines) == 0 {
		return ""
	}
	return strings.Join(w.lines, "\n") + "\n"
}

func (w *LineWriter) unit() string {
	if w.indent == "" {
		return "\t"
	}
	return w.indent
}

var _ Writer = (*LineWriter)(nil)
