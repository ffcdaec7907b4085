// Package contrast implements the WCAG 2.x relative luminance and contrast
// ratio formulas and classifies ratios against the AA/AAA criteria.
package contrast

import "math"

// Linearize converts an sRGB channel in [0,1] to linear light.
func Linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of an sRGB color.
func RelativeLuminance(r, g, b float64) float64 {
	return 0.2126*Linearize(r) + 0.7152*Linearize(g) + 0.0722*Linearize(b)
}
