// Package report renders contrast results for the terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/leonardotrapani/colorcontrast/internal/color"
	"github.com/leonardotrapani/colorcontrast/internal/contrast"
	"github.com/leonardotrapani/colorcontrast/internal/palette"
)

const (
	tileWidth  = 34
	iconPass   = "✔"
	iconFail   = "✖"
	sampleText = "Sample Text"
)

type Renderer struct {
	theme Theme
	lg    *lipgloss.Renderer
	// Width is the terminal width; tiles are laid out side by side when
	// they fit.
	Width int
	// Preview is the text shown in swatches; empty means "Sample Text".
	Preview string
}

// New creates a renderer writing for w. Color output follows w's
// capabilities unless overridden with termenv options.
func New(w io.Writer, theme Theme, opts ...termenv.OutputOption) *Renderer {
	return &Renderer{theme: theme, lg: lipgloss.NewRenderer(w, opts...)}
}

func (r *Renderer) Theme() Theme { return r.theme }

func (r *Renderer) SetTheme(t Theme) { r.theme = t }

// PreviewText returns the text swatches show by default.
func (r *Renderer) PreviewText() string {
	if r.Preview == "" {
		return sampleText
	}
	return r.Preview
}

// Swatch renders text in fg on bg. Empty text uses PreviewText.
func (r *Renderer) Swatch(fg, bg color.Color, text string) string {
	if text == "" {
		text = r.PreviewText()
	}
	return r.lg.NewStyle().
		Foreground(fg.Lipgloss()).
		Background(bg.Lipgloss()).
		Padding(0, 2).
		Render(text)
}

// Result renders the heading, a preview line and the three criteria tiles.
func (r *Renderer) Result(fg, bg color.Color, res contrast.Result) string {
	header := r.lg.NewStyle().
		Bold(true).
		Foreground(r.theme.Text).
		Render(fmt.Sprintf("WCAG Criteria – Contrast ratio: %.2f", res.Ratio))

	preview := fmt.Sprintf("%s  %s on %s  (%s on %s)",
		r.Swatch(fg, bg, ""), fg.Hex(), bg.Hex(), fg.CSSRGBA(), bg.CSSRGBA())

	tiles := make([]string, 0, len(res.Verdicts))
	for _, v := range res.Verdicts {
		tiles = append(tiles, r.tile(v))
	}

	var grid string
	if r.Width >= tileWidth*len(tiles)+2*len(tiles) {
		grid = lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
	} else {
		grid = lipgloss.JoinVertical(lipgloss.Left, tiles...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, preview, grid)
}

func (r *Renderer) tile(v contrast.Verdict) string {
	title := r.lg.NewStyle().Bold(true).Foreground(r.theme.Text).Render(v.Title())
	body := strings.Join([]string{
		title,
		r.passFail("Regular Text", v.Regular),
		r.passFail("Large Text", v.Large),
	}, "\n")

	return r.lg.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.theme.Border).
		Width(tileWidth).
		Padding(0, 1).
		Render(body)
}

func (r *Renderer) passFail(label string, pass bool) string {
	icon, c := iconFail, r.theme.Fail
	if pass {
		icon, c = iconPass, r.theme.Pass
	}
	mark := r.lg.NewStyle().Foreground(c).Render(icon)
	return fmt.Sprintf("%s %s: %s", mark, label, contrast.PassFail(pass))
}

// Failure renders the card shown when no ratio could be computed.
func (r *Renderer) Failure(msg string) string {
	mark := r.lg.NewStyle().Foreground(r.theme.Fail).Bold(true).Render(iconFail)
	body := fmt.Sprintf("%s Fail\n%s", mark, msg)
	return r.lg.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.theme.Fail).
		Foreground(r.theme.Text).
		Padding(0, 1).
		Render(body)
}

// Advice renders a recommendation.
func (r *Renderer) Advice(rec contrast.Recommendation) string {
	title := r.lg.NewStyle().Bold(true).Foreground(r.theme.Text).Render("Recommendation")
	msg := r.lg.NewStyle().Foreground(r.theme.Muted).Render(rec.Message)
	return lipgloss.JoinVertical(lipgloss.Left, title, msg)
}

// Outcomes renders one line per palette pair.
func (r *Renderer) Outcomes(outcomes []palette.Outcome) string {
	nameWidth := 4
	for _, o := range outcomes {
		if w := lipgloss.Width(o.Pair.Name); w > nameWidth {
			nameWidth = w
		}
	}

	nameStyle := r.lg.NewStyle().Width(nameWidth + 2).Foreground(r.theme.Text)
	lines := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		name := nameStyle.Render(o.Pair.Name)
		if o.Err != nil {
			mark := r.lg.NewStyle().Foreground(r.theme.Fail).Render(iconFail)
			lines = append(lines, fmt.Sprintf("%s %s %s", mark, name, o.Err.Error()))
			continue
		}

		c := o.Result.Conformance
		icon, ic := iconFail, r.theme.Fail
		if o.Passes() {
			icon, ic = iconPass, r.theme.Pass
		}
		mark := r.lg.NewStyle().Foreground(ic).Render(icon)
		lines = append(lines, fmt.Sprintf("%s %s %6.2f:1  %s  AA %s  AA-large %s  AAA %s",
			mark, name, o.Result.Ratio,
			r.Swatch(o.Foreground, o.Background, "Aa"),
			contrast.PassFail(c.AANormal), contrast.PassFail(c.AALarge), contrast.PassFail(c.AAANormal)))
	}
	return strings.Join(lines, "\n")
}
