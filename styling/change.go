package styling

// Change is a keep-or-set command for a single style field. The zero value
// keeps the current value; Set returns a Change that overrides it.
type Change[T any] struct {
	set   bool
	value T
}

// Set returns the Change that sets a field to value.
func Set[T any](value T) Change[T] {
	return Change[T]{set: true, value: value}
}

// IsSet tells whether the change overrides the field.
func (c Change[T]) IsSet() bool {
	return c.set
}

// Apply returns the value resulting from applying c to value.
func (c Change[T]) Apply(value T) T {
	if c.set {
		return c.value
	}
	return value
}

// RevertingTo returns the Change that reverts c, assuming previous was the
// value before c was applied. A keep reverts to a keep.
//
// If another change is applied after c and before the result, the final
// value may not be previous.
func (c Change[T]) RevertingTo(previous T) Change[T] {
	if !c.set {
		return Change[T]{}
	}
	return Set(previous)
}

// StyleChange is a per-field instruction set describing which style
// attributes to modify and to what, leaving the rest untouched.
//
// The zero value keeps every field.
type StyleChange struct {
	Foreground Change[Color]
	Background Change[Color]
	Bold       Change[bool]
	Dim        Change[bool]
	Underline  Change[bool]
	Italic     Change[bool]
	Blink      Change[bool]
	Strike     Change[bool]
}

// Keep is the StyleChange that keeps every attribute unchanged.
var Keep = StyleChange{}

// Reset is the StyleChange that resets every attribute to its default.
var Reset = SettingTo(Style{})

// SettingTo returns the StyleChange that sets every field to its value in
// style.
func SettingTo(style Style) StyleChange {
	return StyleChange{
		Foreground: Set(style.Foreground),
		Background: Set(style.Background),
		Bold:       Set(style.Bold),
		Dim:        Set(style.Dim),
		Underline:  Set(style.Underline),
		Italic:     Set(style.Italic),
		Blink:      Set(style.Blink),
		Strike:     Set(style.Strike),
	}
}

// ApplyTo returns the Style resulting from applying c to style. Kept fields
// pass through unchanged.
func (c StyleChange) ApplyTo(style Style) Style {
	return Style{
		Foreground: c.Foreground.Apply(style.Foreground),
		Background: c.Background.Apply(style.Background),
		Bold:       c.Bold.Apply(style.Bold),
		Dim:        c.Dim.Apply(style.Dim),
		Underline:  c.Underline.Apply(style.Underline),
		Italic:     c.Italic.Apply(style.Italic),
		Blink:      c.Blink.Apply(style.Blink),
		Strike:     c.Strike.Apply(style.Strike),
	}
}

// RevertingTo returns the StyleChange that reverts c, assuming previous was
// the style before c was applied. Fields c keeps stay kept, so the revert
// never touches fields the original change didn't.
//
// If another style change is applied after c and before the result, the
// final style may not be previous.
func (c StyleChange) RevertingTo(previous Style) StyleChange {
	return StyleChange{
		Foreground: c.Foreground.RevertingTo(previous.Foreground),
		Background: c.Background.RevertingTo(previous.Background),
		Bold:       c.Bold.RevertingTo(previous.Bold),
		Dim:        c.Dim.RevertingTo(previous.Dim),
		Underline:  c.Underline.RevertingTo(previous.Underline),
		Italic:     c.Italic.RevertingTo(previous.Italic),
		Blink:      c.Blink.RevertingTo(previous.Blink),
		Strike:     c.Strike.RevertingTo(previous.Strike),
	}
}

// Any tells whether c encodes any change, i.e. whether any of its fields is
// a set.
func (c StyleChange) Any() bool {
	return c.Foreground.set ||
		c.Background.set ||
		c.Bold.set ||
		c.Dim.set ||
		c.Underline.set ||
		c.Italic.set ||
		c.Blink.set ||
		c.Strike.set
}
