package styling

import "fmt"

// ColorType tags the source of a Color value.
type ColorType uint8

const (
	ColorTypeUnset ColorType = iota
	ColorTypeBasic
	ColorTypeANSI256
	ColorTypeRGB
)

// Basic is a 4-bit color: one bit each for the red, green and blue
// components and one bit selecting between the bright and dark variants.
// All 16 colors are combinations of these bits.
type Basic uint8

const (
	RedBit    Basic = 0b0001
	GreenBit  Basic = 0b0010
	BlueBit   Basic = 0b0100
	BrightBit Basic = 0b1000

	// ColorMask selects the component bits, dropping the bright bit.
	ColorMask = RedBit | GreenBit | BlueBit
)

const (
	Black         Basic = 0
	DarkRed             = RedBit
	DarkGreen           = GreenBit
	DarkYellow          = RedBit | GreenBit
	DarkBlue            = BlueBit
	DarkMagenta         = BlueBit | RedBit
	DarkCyan            = GreenBit | BlueBit
	DarkGray            = RedBit | GreenBit | BlueBit
	BrightGray          = BrightBit
	BrightRed           = BrightBit | RedBit
	BrightGreen         = BrightBit | GreenBit
	BrightYellow        = BrightBit | RedBit | GreenBit
	BrightBlue          = BrightBit | BlueBit
	BrightMagenta       = BrightBit | BlueBit | RedBit
	BrightCyan          = BrightBit | GreenBit | BlueBit
	White               = BrightBit | RedBit | GreenBit | BlueBit
)

// ANSI256 returns the code of this color in the 256 color escape sequences
// (ESC[38;5;{code}m and ESC[48;5;{code}m).
func (b Basic) ANSI256() uint8 {
	return uint8(b & (ColorMask | BrightBit))
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Color is a text foreground or background color. A color can come from
// multiple sources so the source tag is tracked next to the value.
//
// The zero value is the unset color. Equality is structural.
type Color struct {
	Type  ColorType
	Basic Basic
	Index uint8
	RGB   RGB
}

// BasicColor returns the 4-bit color b.
func BasicColor(b Basic) Color {
	return Color{Type: ColorTypeBasic, Basic: b}
}

// ANSI256Color returns the 256-color palette entry index.
func ANSI256Color(index uint8) Color {
	return Color{Type: ColorTypeANSI256, Index: index}
}

// RGBColor returns the 24-bit color (r, g, b).
func RGBColor(r, g, b uint8) Color {
	return Color{Type: ColorTypeRGB, RGB: RGB{R: r, G: g, B: b}}
}

func (c Color) String() string {
	switch c.Type {
	case ColorTypeUnset:
		return "Color.unset"
	case ColorTypeBasic:
		return fmt.Sprintf("Color.basic{{ %04b }}", uint8(c.Basic))
	case ColorTypeANSI256:
		return fmt.Sprintf("Color.ansi256{{ %d }}", c.Index)
	case ColorTypeRGB:
		return fmt.Sprintf("Color.rgb{{ %d, %d, %d }}", c.RGB.R, c.RGB.G, c.RGB.B)
	default:
		return "Color.unknown"
	}
}
