package contrast

// Source is anything that can report normalized sRGB channels.
type Source interface {
	RGB() (r, g, b float64)
}

// RGB is a plain normalized sRGB triple.
type RGB struct {
	R, G, B float64
}

func (c RGB) RGB() (r, g, b float64) {
	return c.R, c.G, c.B
}

var (
	White = RGB{1, 1, 1}
	Black = RGB{0, 0, 0}
)

// Luminance is RelativeLuminance for a Source.
func Luminance(c Source) float64 {
	return RelativeLuminance(c.RGB())
}

// Ratio returns the contrast ratio between two colors, in [1, 21].
// Order does not matter and alpha is not considered.
func Ratio(fg, bg Source) float64 {
	l1 := Luminance(fg)
	l2 := Luminance(bg)
	if l2 > l1 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}
