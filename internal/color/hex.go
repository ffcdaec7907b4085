package color

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidColorFormat = errors.New("invalid color format")

// byteEpsilon absorbs float error from the HSV round trip before truncation.
const byteEpsilon = 1e-7

// ParseHex parses "#RRGGBB" or "#RRGGBBAA". Characters after the digit
// window are ignored. Alpha defaults to opaque.
func ParseHex(text string) (Color, error) {
	if !strings.HasPrefix(text, "#") {
		return Color{}, fmt.Errorf("%w: %q must start with '#'", ErrInvalidColorFormat, text)
	}
	digits := text[1:]
	if len(digits) < 6 {
		return Color{}, fmt.Errorf("%w: %q needs at least 6 hex digits", ErrInvalidColorFormat, text)
	}

	window := digits[:6]
	if len(digits) >= 8 && isHexDigit(digits[6]) && isHexDigit(digits[7]) {
		window = digits[:8]
	}

	raw, err := hex.DecodeString(window)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidColorFormat, text)
	}

	a := 1.0
	if len(raw) == 4 {
		a = float64(raw[3]) / 255.0
	}
	return FromRGB(float64(raw[0])/255.0, float64(raw[1])/255.0, float64(raw[2])/255.0, a), nil
}

// MustParseHex is ParseHex for literals known to be valid.
func MustParseHex(text string) Color {
	c, err := ParseHex(text)
	if err != nil {
		panic(err)
	}
	return c
}

// ToHex renders uppercase hex. The alpha byte is written when includeAlpha
// is set or when the color is not fully opaque.
func ToHex(c Color, includeAlpha bool) string {
	r, g, b, a := c.Bytes()
	if includeAlpha || a < 255 {
		return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a)
	}
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// Hex is the canonical write-back form: alpha only when translucent.
func (c Color) Hex() string {
	return ToHex(c, false)
}

// HexAlpha always includes the alpha byte.
func (c Color) HexAlpha() string {
	return ToHex(c, true)
}

// EnsureHashPrefix puts a single leading '#' on user input, dropping any
// other '#' characters.
func EnsureHashPrefix(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "#") {
		return text
	}
	return "#" + strings.ReplaceAll(text, "#", "")
}

func toByte(v float64) uint8 {
	n := int(v*255.0 + byteEpsilon)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
