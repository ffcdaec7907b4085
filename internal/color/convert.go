package color

import "github.com/lucasb-eyer/go-colorful"

// HSVToRGB converts hue (turns), saturation and value to normalized RGB.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	c := colorful.Hsv(wrapHue(h)*360.0, clamp01(s), clamp01(v))
	return clamp01(c.R), clamp01(c.G), clamp01(c.B)
}

// RGBToHSV converts normalized RGB to hue (turns), saturation and value.
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	deg, s, v := colorful.Color{R: r, G: g, B: b}.Hsv()
	return wrapHue(deg / 360.0), s, v
}
