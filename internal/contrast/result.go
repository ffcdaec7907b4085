package contrast

// Result is a single contrast calculation.
type Result struct {
	Ratio       float64     `json:"ratio"`
	Conformance Conformance `json:"conformance"`
	Verdicts    []Verdict   `json:"verdicts"`
}

// Evaluate computes the ratio between fg and bg and classifies it.
func Evaluate(fg, bg Source) Result {
	ratio := Ratio(fg, bg)
	return Result{
		Ratio:       ratio,
		Conformance: CheckConformance(ratio),
		Verdicts:    Classify(ratio),
	}
}

// Passes reports whether the pair meets AA for normal text.
func (r Result) Passes() bool {
	return r.Conformance.AANormal
}
