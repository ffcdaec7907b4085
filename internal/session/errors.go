package session

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInsufficientOpacity = errors.New("insufficient opacity")
	ErrNoRatio             = errors.New("no contrast ratio calculated yet")
)

// OpacityError reports which side(s) fell under the opacity threshold.
type OpacityError struct {
	Foreground bool
	Background bool
	Threshold  float64
}

func (e *OpacityError) Error() string {
	pct := int(math.Round(e.Threshold * 100))
	switch {
	case e.Foreground && e.Background:
		return fmt.Sprintf("Both FG & BG < %d%% opacity", pct)
	case e.Foreground:
		return fmt.Sprintf("Foreground < %d%% opacity", pct)
	default:
		return fmt.Sprintf("Background < %d%% opacity", pct)
	}
}

func (e *OpacityError) Is(target error) bool {
	return target == ErrInsufficientOpacity
}

// Side names the transparent side(s): "foreground", "background" or "both".
func (e *OpacityError) Side() string {
	switch {
	case e.Foreground && e.Background:
		return "both"
	case e.Foreground:
		return "foreground"
	default:
		return "background"
	}
}

// CheckOpacity returns an *OpacityError when either alpha is below min.
func CheckOpacity(fgAlpha, bgAlpha, min float64) error {
	fg := fgAlpha < min
	bg := bgAlpha < min
	if !fg && !bg {
		return nil
	}
	return &OpacityError{Foreground: fg, Background: bg, Threshold: min}
}
