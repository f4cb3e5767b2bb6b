// Package writers provides the concrete styling.StyledWriter backends: an
// ANSI-emitting writer and a plain writer that tracks style without ever
// writing escape bytes.
package writers

import (
	"fmt"
	"io"

	"github.com/hnimtadd/promptline/styling"
)

// ANSIWriter is a styling.StyledWriter that emits minimal ANSI SGR escape
// sequences onto its sink: one ESC[...m sequence per style change, carrying
// one parameter per field that actually changes.
//
// Only the SGR family is ever emitted; no cursor movement or clearing.
type ANSIWriter struct {
	writer io.Writer
	style  styling.Style
}

// NewANSIWriter returns an ANSIWriter emitting onto w, starting at the
// default style.
func NewANSIWriter(w io.Writer) *ANSIWriter {
	return &ANSIWriter{writer: w}
}

func (w *ANSIWriter) Write(p []byte) (int, error) {
	return w.writer.Write(p)
}

// Flush flushes the sink when it supports flushing.
func (w *ANSIWriter) Flush() error {
	return flush(w.writer)
}

// Style returns the current text style.
func (w *ANSIWriter) Style() *styling.Style {
	return &w.style
}

// ChangeStyle emits one SGR sequence covering exactly the fields change
// sets, then records the resolved style. An all-keep change writes nothing.
//
// If the sink fails mid-sequence the partial output is not rolled back.
func (w *ANSIWriter) ChangeStyle(change styling.StyleChange) error {
	if !change.Any() {
		return nil
	}

	resolved := change.ApplyTo(w.style)
	seq := newSGRSequence()

	// SGR 22 clears both bold and dim, so changing either one requires
	// re-emitting the resulting combination of the two.
	if change.Bold.IsSet() || change.Dim.IsSet() {
		switch {
		case resolved.Bold && resolved.Dim:
			seq.param("1;2")
		case resolved.Bold:
			seq.param("22;1")
		case resolved.Dim:
			seq.param("22;2")
		default:
			seq.param("22")
		}
	}
	if change.Italic.IsSet() {
		if resolved.Italic {
			seq.param("3")
		} else {
			seq.param("23")
		}
	}
	if change.Underline.IsSet() {
		if resolved.Underline {
			seq.param("4")
		} else {
			seq.param("24")
		}
	}
	if change.Blink.IsSet() {
		if resolved.Blink {
			seq.param("5")
		} else {
			seq.param("25")
		}
	}
	if change.Strike.IsSet() {
		if resolved.Strike {
			seq.param("9")
		} else {
			seq.param("29")
		}
	}
	if change.Foreground.IsSet() {
		seq.foreground(resolved.Foreground)
	}
	if change.Background.IsSet() {
		seq.background(resolved.Background)
	}

	// At least one parameter is certain to be present because of the
	// early return on !change.Any().
	if _, err := w.writer.Write(seq.bytes()); err != nil {
		return err
	}
	w.style = resolved
	return nil
}

// ResetStyle emits the fixed full-reset sequence ESC[0m instead of
// composing individual parameters, then resets the recorded style.
func (w *ANSIWriter) ResetStyle() error {
	if _, err := io.WriteString(w.writer, "\x1b[0m"); err != nil {
		return err
	}
	w.style = styling.Style{}
	return nil
}

// SwapColors swaps the foreground and background colors in one sequence,
// byte-identical to the equivalent two-field ChangeStyle. Equal colors are
// a true no-op: nothing is written.
func (w *ANSIWriter) SwapColors() error {
	if w.style.Foreground == w.style.Background {
		return nil
	}

	seq := newSGRSequence()
	seq.foreground(w.style.Background)
	seq.background(w.style.Foreground)
	if _, err := w.writer.Write(seq.bytes()); err != nil {
		return err
	}
	w.style.SwapColors()
	return nil
}

// sgrSequence assembles one ESC[p;p;...;pm escape sequence.
type sgrSequence struct {
	buf   []byte
	first bool
}

func newSGRSequence() *sgrSequence {
	return &sgrSequence{buf: []byte("\x1b["), first: true}
}

func (s *sgrSequence) param(p string) {
	if s.first {
		s.first = false
	} else {
		s.buf = append(s.buf, ';')
	}
	s.buf = append(s.buf, p...)
}

func (s *sgrSequence) paramf(format string, args ...any) {
	s.param(fmt.Sprintf(format, args...))
}

// foreground appends the SGR parameter selecting c as the foreground color.
func (s *sgrSequence) foreground(c styling.Color) {
	switch c.Type {
	case styling.ColorTypeUnset:
		s.param("39")
	case styling.ColorTypeBasic:
		if c.Basic&styling.BrightBit != 0 {
			s.paramf("9%d", uint8(c.Basic&styling.ColorMask))
		} else {
			s.paramf("3%d", uint8(c.Basic&styling.ColorMask))
		}
	case styling.ColorTypeANSI256:
		s.paramf("38;5;%d", c.Index)
	case styling.ColorTypeRGB:
		s.paramf("38;2;%d;%d;%d", c.RGB.R, c.RGB.G, c.RGB.B)
	}
}

// background appends the SGR parameter selecting c as the background color.
func (s *sgrSequence) background(c styling.Color) {
	switch c.Type {
	case styling.ColorTypeUnset:
		s.param("49")
	case styling.ColorTypeBasic:
		if c.Basic&styling.BrightBit != 0 {
			s.paramf("10%d", uint8(c.Basic&styling.ColorMask))
		} else {
			s.paramf("4%d", uint8(c.Basic&styling.ColorMask))
		}
	case styling.ColorTypeANSI256:
		s.paramf("48;5;%d", c.Index)
	case styling.ColorTypeRGB:
		s.paramf("48;2;%d;%d;%d", c.RGB.R, c.RGB.G, c.RGB.B)
	}
}

func (s *sgrSequence) bytes() []byte {
	return append(s.buf, 'm')
}

type flusher interface {
	Flush() error
}

func flush(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
