package writers

import (
	"io"

	"github.com/hnimtadd/promptline/styling"
)

// PlainWriter is a styling.StyledWriter that never writes escape bytes. It
// still tracks the resolved style through the same keep-or-set algebra so
// callers can query it.
//
// Use it when the output is not a terminal or styling is disabled.
type PlainWriter struct {
	writer io.Writer
	style  styling.Style
}

// NewPlainWriter returns a PlainWriter delegating byte writes to w.
func NewPlainWriter(w io.Writer) *PlainWriter {
	return &PlainWriter{writer: w}
}

func (w *PlainWriter) Write(p []byte) (int, error) {
	return w.writer.Write(p)
}

// Flush flushes the sink when it supports flushing.
func (w *PlainWriter) Flush() error {
	return flush(w.writer)
}

// Style returns the current text style.
func (w *PlainWriter) Style() *styling.Style {
	return &w.style
}

// ChangeStyle records the resolved style without writing anything.
func (w *PlainWriter) ChangeStyle(change styling.StyleChange) error {
	w.style = change.ApplyTo(w.style)
	return nil
}
