package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leonardotrapani/colorcontrast/internal/color"
	"github.com/leonardotrapani/colorcontrast/internal/session"
)

// validateHex accepts anything session.SetHex would accept.
func validateHex(text string) error {
	_, err := color.ParseHex(color.EnsureHashPrefix(text))
	return err
}

// sliderValidator checks that text is an integer in the slider range.
func sliderValidator(slider session.Slider) func(string) error {
	return func(text string) error {
		_, err := parseSlider(slider, text)
		return err
	}
}

func parseSlider(slider session.Slider, text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", strings.ToLower(slider.String()))
	}
	if n < 0 || n > slider.Max() {
		return 0, fmt.Errorf("%s must be between 0 and %d", strings.ToLower(slider.String()), slider.Max())
	}
	return n, nil
}

func sliderHelp(slider session.Slider) string {
	switch slider {
	case session.Hue:
		return "0..360°. Controls color angle."
	case session.Saturation:
		return "0..100. 0=gray, 100=vivid."
	case session.Brightness:
		return "0..100. 0=black, 100=bright."
	default:
		return "0..100. 0=transparent, 100=opaque."
	}
}

func roleTitle(role session.Role) string {
	if role == session.Foreground {
		return "Foreground"
	}
	return "Background"
}

// formatHexLabel formats the hex menu option showing the current color
func formatHexLabel(role session.Role, c color.Color) string {
	return fmt.Sprintf("%s Hex (%s)", roleTitle(role), c.Hex())
}

// formatSlidersLabel formats the sliders menu option showing slider positions
func formatSlidersLabel(role session.Role, c color.Color) string {
	h, s, v, a := c.Sliders()
	return fmt.Sprintf("%s Sliders (H %d° S %d B %d O %d)", roleTitle(role), h, s, v, a)
}

// formatRecentLabel formats the recent colors menu option
func formatRecentLabel(recent []color.Color) string {
	return fmt.Sprintf("Recent Colors (%d)", len(recent))
}

// formatPreviewLabel formats the preview text menu option
func formatPreviewLabel(text string) string {
	return fmt.Sprintf("Preview Text (%q)", text)
}

// formatStatus shows both colors and the last ratio, if any.
func formatStatus(fg, bg color.Color, ratio float64, ok bool) string {
	last := "none yet"
	if ok {
		last = fmt.Sprintf("%.2f:1", ratio)
	}
	return fmt.Sprintf("%s %s   %s %s   %s %s",
		StyleLabel.Render("FG"), fg.Hex(),
		StyleLabel.Render("BG"), bg.Hex(),
		StyleLabel.Render("Last ratio"), last)
}
