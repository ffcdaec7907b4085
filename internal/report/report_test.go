package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/leonardotrapani/colorcontrast/internal/color"
	"github.com/leonardotrapani/colorcontrast/internal/contrast"
	"github.com/leonardotrapani/colorcontrast/internal/palette"
	"github.com/leonardotrapani/colorcontrast/internal/session"
)

func newTestRenderer(theme Theme) *Renderer {
	// a bytes.Buffer is not a terminal, so output carries no escape codes
	return New(&bytes.Buffer{}, theme)
}

func TestRendererResult(t *testing.T) {
	fg := color.MustParseHex("#777777")
	bg := color.MustParseHex("#FFFFFF")
	res := contrast.Evaluate(fg, bg)

	out := newTestRenderer(Light).Result(fg, bg, res)

	for _, want := range []string{
		"WCAG Criteria – Contrast ratio: 4.48",
		"#777777 on #FFFFFF",
		"rgba(119,119,119,1.00)",
		"1.4.3 (AA) Minimum Contrast",
		"1.4.6 (AAA) Enhanced Contrast",
		"1.4.11 Non-text Contrast (AA)",
		"✖ Regular Text: Fail",
		"✔ Large Text: Pass",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Result() missing %q in:\n%s", want, out)
		}
	}

	minimum := strings.Index(out, "Minimum Contrast")
	enhanced := strings.Index(out, "Enhanced Contrast")
	nonText := strings.Index(out, "Non-text Contrast")
	if !(minimum < enhanced && enhanced < nonText) {
		t.Errorf("criteria out of order: %d %d %d", minimum, enhanced, nonText)
	}
}

func TestRendererPreviewText(t *testing.T) {
	fg := color.MustParseHex("#000000")
	bg := color.MustParseHex("#FFFFFF")
	r := newTestRenderer(Light)

	if got := r.PreviewText(); got != "Sample Text" {
		t.Errorf("PreviewText() default = %q", got)
	}

	r.Preview = "Buy now"
	if !strings.Contains(r.Swatch(fg, bg, ""), "Buy now") {
		t.Errorf("Swatch() should use the preview text")
	}
	if !strings.Contains(r.Swatch(fg, bg, "Aa"), "Aa") {
		t.Errorf("Swatch() should keep explicit text")
	}
	out := r.Result(fg, bg, contrast.Evaluate(fg, bg))
	if !strings.Contains(out, "Buy now") || strings.Contains(out, "Sample Text") {
		t.Errorf("Result() preview line should use the preview text:\n%s", out)
	}
}

func TestRendererWideLayout(t *testing.T) {
	fg, bg := color.MustParseHex("#000000"), color.MustParseHex("#FFFFFF")
	res := contrast.Evaluate(fg, bg)

	r := newTestRenderer(Dark)
	narrow := r.Result(fg, bg, res)
	r.Width = 200
	wide := r.Result(fg, bg, res)

	if strings.Count(wide, "\n") >= strings.Count(narrow, "\n") {
		t.Errorf("wide layout should use fewer lines (%d) than narrow (%d)",
			strings.Count(wide, "\n"), strings.Count(narrow, "\n"))
	}
}

func TestRendererFailure(t *testing.T) {
	err := session.CheckOpacity(0.1, 1, 0.2)
	out := newTestRenderer(Light).Failure(err.Error())
	if !strings.Contains(out, "✖ Fail") || !strings.Contains(out, "Foreground < 20% opacity") {
		t.Errorf("Failure() = %q", out)
	}
}

func TestRendererAdvice(t *testing.T) {
	out := newTestRenderer(Light).Advice(contrast.Recommend(2))
	if !strings.Contains(out, "Recommendation") || !strings.Contains(out, "quite low") {
		t.Errorf("Advice() = %q", out)
	}
}

func TestRendererOutcomes(t *testing.T) {
	p := &palette.Palette{Pairs: []palette.Pair{
		{Name: "body", Foreground: "#000000", Background: "#FFFFFF"},
		{Name: "ghost", Foreground: "#00000010", Background: "#FFFFFF"},
	}}
	out := newTestRenderer(Light).Outcomes(p.Evaluate(session.DefaultMinOpacity))
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Outcomes() produced %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "21.00:1") || !strings.Contains(lines[0], "AA Pass") {
		t.Errorf("body line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Foreground < 20% opacity") {
		t.Errorf("ghost line = %q", lines[1])
	}
}

func TestThemeFor(t *testing.T) {
	if ThemeFor("light").Name != "light" || ThemeFor("dark").Name != "dark" {
		t.Error("explicit theme names must be honoured")
	}
	if Light.Toggle().Name != "dark" || Dark.Toggle().Name != "light" {
		t.Error("Toggle() should flip between light and dark")
	}
}

func TestNewPairJSON(t *testing.T) {
	fg, bg := color.MustParseHex("#000000"), color.MustParseHex("#FFFFFF")
	res := contrast.Evaluate(fg, bg)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewPairJSON("body", fg, bg, res, nil)); err != nil {
		t.Fatal(err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if decoded["ratio_text"] != "21.00" {
		t.Errorf("ratio_text = %v", decoded["ratio_text"])
	}
	if decoded["foreground_css"] != "rgba(0,0,0,1.00)" {
		t.Errorf("foreground_css = %v", decoded["foreground_css"])
	}
	verdicts, ok := decoded["verdicts"].([]any)
	if !ok || len(verdicts) != 3 {
		t.Errorf("verdicts = %v", decoded["verdicts"])
	}
	if _, hasErr := decoded["error"]; hasErr {
		t.Error("successful check should not carry an error field")
	}
}

func TestNewPairJSONError(t *testing.T) {
	fg := color.MustParseHex("#00000010")
	bg := color.MustParseHex("#FFFFFF")
	p := NewPairJSON("", fg, bg, contrast.Result{}, errors.New("Foreground < 20% opacity"))
	if p.Error == "" || p.Conformance != nil || p.RatioText != "" {
		t.Errorf("error pair = %+v", p)
	}
	if p.Foreground != "#00000010" {
		t.Errorf("Foreground = %q, want #00000010", p.Foreground)
	}
}
