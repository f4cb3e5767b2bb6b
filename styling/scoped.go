package styling

import "fmt"

// WithStyle applies change, runs fn, then reverts the fields change touched
// back to their previous values.
//
// fn only runs if applying change succeeds. An error from fn takes
// precedence over a successful revert. An error from the revert is returned
// even when fn succeeded, since the stream is left in an unknown style.
//
// The revert assumes no other style mutation happens inside fn; if one
// does, the final style may not match the style before the call.
func WithStyle(w StyledWriter, change StyleChange, fn func() error) error {
	revert := change.RevertingTo(*w.Style())
	if err := w.ChangeStyle(change); err != nil {
		return err
	}
	err := fn()
	if revertErr := w.ChangeStyle(revert); err == nil {
		err = revertErr
	}
	return err
}

// WithStyleThenReset applies change, runs fn, then resets the style to the
// default rather than restoring the previous one.
//
// Error precedence is the same as WithStyle's.
func WithStyleThenReset(w StyledWriter, change StyleChange, fn func() error) error {
	if err := w.ChangeStyle(change); err != nil {
		return err
	}
	err := fn()
	if resetErr := ResetStyle(w); err == nil {
		err = resetErr
	}
	return err
}

// WithSwappedColors swaps the foreground and background colors, runs fn,
// then swaps them back.
//
// Error precedence is the same as WithStyle's.
func WithSwappedColors(w StyledWriter, fn func() error) error {
	if err := SwapColors(w); err != nil {
		return err
	}
	err := fn()
	if swapErr := SwapColors(w); err == nil {
		err = swapErr
	}
	return err
}

// Writef writes formatted data with change temporarily applied, reverting
// the touched fields afterwards.
func Writef(w StyledWriter, change StyleChange, format string, args ...any) error {
	return WithStyle(w, change, func() error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	})
}

// WritefThenReset writes formatted data with change applied, resetting the
// style to the default afterwards.
func WritefThenReset(w StyledWriter, change StyleChange, format string, args ...any) error {
	return WithStyleThenReset(w, change, func() error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	})
}

// WritefSwapped writes formatted data with the foreground and background
// colors swapped, swapping them back afterwards.
func WritefSwapped(w StyledWriter, format string, args ...any) error {
	return WithSwappedColors(w, func() error {
		_, err := fmt.Fprintf(w, format, args...)
		return err
	})
}
