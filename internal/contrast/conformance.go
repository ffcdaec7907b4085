package contrast

import "fmt"

// WCAG thresholds.
const (
	ThresholdAANormal  = 4.5
	ThresholdAALarge   = 3.0
	ThresholdAAANormal = 7.0
	ThresholdNonText   = 3.0
)

// Conformance holds the three raw WCAG verdicts for a ratio.
type Conformance struct {
	AANormal  bool `json:"aa_normal"`
	AALarge   bool `json:"aa_large"`
	AAANormal bool `json:"aaa_normal"`
}

func CheckConformance(ratio float64) Conformance {
	return Conformance{
		AANormal:  ratio >= ThresholdAANormal,
		AALarge:   ratio >= ThresholdAALarge,
		AAANormal: ratio >= ThresholdAAANormal,
	}
}

// Verdict is one row of the display table.
type Verdict struct {
	Heading   string `json:"title"`
	Criterion string `json:"criterion"`
	SC        string `json:"success_criterion"`
	Level     string `json:"level"`
	Regular   bool   `json:"regular"`
	Large     bool   `json:"large"`
}

// Title is the row heading, e.g. "1.4.3 (AA) Minimum Contrast". Rows
// built without a Heading fall back to that layout.
func (v Verdict) Title() string {
	if v.Heading != "" {
		return v.Heading
	}
	return fmt.Sprintf("%s (%s) %s", v.SC, v.Level, v.Criterion)
}

// Classify builds the fixed three-row criteria table. The enhanced and
// non-text rows use one threshold for both columns.
func Classify(ratio float64) []Verdict {
	c := CheckConformance(ratio)
	nonText := ratio >= ThresholdNonText
	return []Verdict{
		{Heading: "1.4.3 (AA) Minimum Contrast", Criterion: "Minimum Contrast", SC: "1.4.3", Level: "AA", Regular: c.AANormal, Large: c.AALarge},
		{Heading: "1.4.6 (AAA) Enhanced Contrast", Criterion: "Enhanced Contrast", SC: "1.4.6", Level: "AAA", Regular: c.AAANormal, Large: c.AAANormal},
		{Heading: "1.4.11 Non-text Contrast (AA)", Criterion: "Non-text Contrast", SC: "1.4.11", Level: "AA", Regular: nonText, Large: nonText},
	}
}

// PassFail renders a verdict for display.
func PassFail(pass bool) string {
	if pass {
		return "Pass"
	}
	return "Fail"
}
