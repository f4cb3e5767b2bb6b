package styling

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// Style is a fully resolved text style: the appearance a writer believes is
// currently in effect.
//
// The zero value is the default style (no colors, no attributes). A style is
// owned by its writer and only mutated through ChangeStyle so that it always
// matches what the underlying stream would render.
type Style struct {
	Foreground Color
	Background Color

	Bold      bool
	Dim       bool
	Underline bool
	Italic    bool
	Blink     bool
	Strike    bool
}

// SwapColors swaps the foreground and background colors in place.
func (s *Style) SwapColors() {
	s.Foreground, s.Background = s.Background, s.Foreground
}

// ColorsSwapped returns a copy of s with the foreground and background
// colors swapped.
func (s Style) ColorsSwapped() Style {
	s.SwapColors()
	return s
}

// IsDefault tells whether s is the default style.
func (s Style) IsDefault() bool {
	return s == Style{}
}

func (s Style) Hash() uint64 {
	hashed, err := hashstructure.Hash(s, hashstructure.FormatV2, nil)
	if err != nil {
		panic(fmt.Sprintf("failed to hash style: %v", err))
	}
	return hashed
}
