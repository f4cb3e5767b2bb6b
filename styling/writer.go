// Package styling provides the styled-text writer contract and its
// style-change algebra: value types for colors and styles, keep-or-set
// change descriptors with revert support, and scoped helpers that bracket a
// unit of work with a temporary style.
package styling

import "io"

// StyledWriter is a text writer capable of styling.
//
// A StyledWriter owns its Style for its whole lifetime, starting at the
// default style. Byte writes go straight to the underlying sink; failures
// surface as the sink's errors. A writer is not safe for concurrent use.
type StyledWriter interface {
	io.Writer

	// Style returns the current text style. No side effects.
	Style() *Style

	// ChangeStyle changes some (or all) of the text style properties for
	// future writes. A change with every field kept is a strict no-op: no
	// bytes are written and the state is unchanged.
	ChangeStyle(change StyleChange) error
}

// styleResetter is implemented by backends with a cheaper reset than the
// derived ChangeStyle(Reset).
type styleResetter interface {
	ResetStyle() error
}

// colorSwapper is implemented by backends with a cheaper color swap than
// the derived two-field ChangeStyle.
type colorSwapper interface {
	SwapColors() error
}

// ResetStyle resets w's text style for future writes.
//
// Backends providing their own ResetStyle method are deferred to; the
// default resets every field through ChangeStyle.
func ResetStyle(w StyledWriter) error {
	if r, ok := w.(styleResetter); ok {
		return r.ResetStyle()
	}
	return w.ChangeStyle(Reset)
}

// SwapColors swaps the foreground and background colors of w's text style
// for future writes, leaving every other field untouched.
//
// Backends providing their own SwapColors method are deferred to; the
// default issues a two-field ChangeStyle. Swapping equal colors is
// harmless either way.
func SwapColors(w StyledWriter) error {
	if s, ok := w.(colorSwapper); ok {
		return s.SwapColors()
	}
	style := w.Style()
	return w.ChangeStyle(StyleChange{
		Foreground: Set(style.Background),
		Background: Set(style.Foreground),
	})
}
