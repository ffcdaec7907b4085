package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/leonardotrapani/colorcontrast/internal/color"
	"github.com/leonardotrapani/colorcontrast/internal/contrast"
	"github.com/leonardotrapani/colorcontrast/internal/palette"
)

// PairJSON is the machine-readable form of one check.
type PairJSON struct {
	Name           string                `json:"name,omitempty"`
	Foreground     string                `json:"foreground"`
	Background     string                `json:"background"`
	ForegroundCSS  string                `json:"foreground_css"`
	BackgroundCSS  string                `json:"background_css"`
	Ratio          float64               `json:"ratio,omitempty"`
	RatioText      string                `json:"ratio_text,omitempty"`
	Conformance    *contrast.Conformance `json:"conformance,omitempty"`
	Verdicts       []contrast.Verdict    `json:"verdicts,omitempty"`
	Recommendation string                `json:"recommendation,omitempty"`
	Error          string                `json:"error,omitempty"`
}

func NewPairJSON(name string, fg, bg color.Color, res contrast.Result, err error) PairJSON {
	out := PairJSON{
		Name:          name,
		Foreground:    fg.Hex(),
		Background:    bg.Hex(),
		ForegroundCSS: fg.CSSRGBA(),
		BackgroundCSS: bg.CSSRGBA(),
	}
	if err != nil {
		out.Error = err.Error()
		return out
	}
	conf := res.Conformance
	out.Ratio = res.Ratio
	out.RatioText = fmt.Sprintf("%.2f", res.Ratio)
	out.Conformance = &conf
	out.Verdicts = res.Verdicts
	out.Recommendation = contrast.Recommend(res.Ratio).Message
	return out
}

func OutcomesJSON(outcomes []palette.Outcome) []PairJSON {
	out := make([]PairJSON, 0, len(outcomes))
	for _, o := range outcomes {
		out = append(out, NewPairJSON(o.Pair.Name, o.Foreground, o.Background, o.Result, o.Err))
	}
	return out
}

func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
