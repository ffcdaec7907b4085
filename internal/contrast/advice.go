package contrast

import "fmt"

// Tier is a recommendation band.
type Tier int

const (
	TierLow Tier = iota
	TierBelowAA
	TierMeetsAA
	TierMeetsAAA
)

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierBelowAA:
		return "below-aa"
	case TierMeetsAA:
		return "meets-aa"
	case TierMeetsAAA:
		return "meets-aaa"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Recommendation is advisory text for a ratio.
type Recommendation struct {
	Ratio   float64 `json:"ratio"`
	Tier    Tier    `json:"-"`
	Message string  `json:"message"`
}

// TierFor picks the band for a ratio: <3, <4.5, <7, and the rest.
func TierFor(ratio float64) Tier {
	switch {
	case ratio < ThresholdAALarge:
		return TierLow
	case ratio < ThresholdAANormal:
		return TierBelowAA
	case ratio < ThresholdAAANormal:
		return TierMeetsAA
	default:
		return TierMeetsAAA
	}
}

func Recommend(ratio float64) Recommendation {
	tier := TierFor(ratio)
	var msg string
	switch tier {
	case TierLow:
		msg = fmt.Sprintf("Your contrast ratio is only %.2f, which is quite low.\n\n"+
			"Try making the background lighter or the foreground darker.\n"+
			"Consider increasing the saturation or brightness difference.", ratio)
	case TierBelowAA:
		msg = fmt.Sprintf("Your contrast ratio is %.2f, which doesn't meet AA for normal text.\n\n"+
			"Try adjusting the background/foreground to increase contrast.\n"+
			"For example, make the BG brighter or the FG color bolder.", ratio)
	case TierMeetsAA:
		msg = fmt.Sprintf("Your contrast ratio is %.2f, which meets AA for normal text,\n"+
			"but not AAA. If you want AAA, you need 7.0 or higher.\n"+
			"You could try a slightly darker or brighter color to bump the ratio.", ratio)
	default:
		msg = fmt.Sprintf("Great! Your contrast ratio is %.2f which meets AAA.\n\n"+
			"You have excellent contrast, so you should be set.\n"+
			"If you want a different aesthetic, you can still tweak hue/sat.", ratio)
	}
	return Recommendation{Ratio: ratio, Tier: tier, Message: msg}
}
