package color

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Color is an immutable HSVA color.
// Hue is stored in turns [0,1); saturation, value and alpha in [0,1].
type Color struct {
	h, s, v, a float64
}

// Defaults used by a fresh session: red text on white.
var (
	DefaultForeground = FromHSV(0, 1, 1, 1)
	DefaultBackground = FromHSV(0, 0, 1, 1)
)

// FromHSV builds a color from hue (turns), saturation, value and alpha.
// Hue wraps modulo 1; the other components are clamped to [0,1].
func FromHSV(h, s, v, a float64) Color {
	return Color{h: wrapHue(h), s: clamp01(s), v: clamp01(v), a: clamp01(a)}
}

// FromRGB builds a color from normalized red, green, blue and alpha.
func FromRGB(r, g, b, a float64) Color {
	h, s, v := RGBToHSV(clamp01(r), clamp01(g), clamp01(b))
	return FromHSV(h, s, v, a)
}

// FromSliders maps slider positions (hue 0-360, the rest 0-100) to a color.
func FromSliders(hue, saturation, brightness, opacity int) Color {
	return FromHSV(
		float64(hue)/360.0,
		float64(saturation)/100.0,
		float64(brightness)/100.0,
		float64(opacity)/100.0,
	)
}

func (c Color) Hue() float64        { return c.h }
func (c Color) Saturation() float64 { return c.s }
func (c Color) Value() float64      { return c.v }
func (c Color) Alpha() float64      { return c.a }

func (c Color) WithHue(h float64) Color        { return FromHSV(h, c.s, c.v, c.a) }
func (c Color) WithSaturation(s float64) Color { return FromHSV(c.h, s, c.v, c.a) }
func (c Color) WithValue(v float64) Color      { return FromHSV(c.h, c.s, v, c.a) }
func (c Color) WithAlpha(a float64) Color      { return FromHSV(c.h, c.s, c.v, a) }

// RGB returns the normalized red, green and blue channels.
func (c Color) RGB() (r, g, b float64) {
	return HSVToRGB(c.h, c.s, c.v)
}

// RGBA is RGB plus alpha.
func (c Color) RGBA() (r, g, b, a float64) {
	r, g, b = c.RGB()
	return r, g, b, c.a
}

// Bytes returns the 8-bit channels the way they are written to hex.
func (c Color) Bytes() (r, g, b, a uint8) {
	rf, gf, bf := c.RGB()
	return toByte(rf), toByte(gf), toByte(bf), toByte(c.a)
}

// Sliders returns the slider positions for this color.
func (c Color) Sliders() (hue, saturation, brightness, opacity int) {
	hue = int(math.Round(c.h*360)) % 360
	saturation = int(math.Round(c.s * 100))
	brightness = int(math.Round(c.v * 100))
	opacity = int(math.Round(c.a * 100))
	return hue, saturation, brightness, opacity
}

// CSSRGBA formats the color as rgba(R,G,B,A) for live previews.
func (c Color) CSSRGBA() string {
	r, g, b, a := c.Bytes()
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", r, g, b, float64(a)/255.0)
}

// Lipgloss returns the opaque color for terminal swatches.
func (c Color) Lipgloss() lipgloss.Color {
	r, g, b, _ := c.Bytes()
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", r, g, b))
}

// Equal compares colors by their 8-bit representation.
func (c Color) Equal(other Color) bool {
	return c.HexAlpha() == other.HexAlpha()
}

func (c Color) String() string {
	return c.Hex()
}

func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 1.0)
	if h < 0 {
		h += 1.0
	}
	if h >= 1.0 {
		h = 0
	}
	return h
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
