// Package session holds the state a front end keeps between contrast
// calculations: the two colors, the last successful ratio and the recently
// used colors.
package session

import (
	"fmt"
	"sync"

	"github.com/leonardotrapani/colorcontrast/internal/color"
	"github.com/leonardotrapani/colorcontrast/internal/contrast"
)

// DefaultMinOpacity is the alpha under which no ratio is computed.
const DefaultMinOpacity = 0.2

type Role int

const (
	Foreground Role = iota
	Background
)

func (r Role) String() string {
	if r == Foreground {
		return "foreground"
	}
	return "background"
}

// Slider identifies one HSVA slider.
type Slider int

const (
	Hue Slider = iota
	Saturation
	Brightness
	Opacity
)

func (s Slider) String() string {
	switch s {
	case Hue:
		return "Hue"
	case Saturation:
		return "Saturation"
	case Brightness:
		return "Brightness"
	case Opacity:
		return "Opacity"
	default:
		return fmt.Sprintf("slider(%d)", int(s))
	}
}

// Max is the upper bound of the slider range; the lower bound is 0.
func (s Slider) Max() int {
	if s == Hue {
		return 360
	}
	return 100
}

type Options struct {
	Foreground color.Color
	Background color.Color
	MinOpacity float64
	RecentSize int
}

func DefaultOptions() Options {
	return Options{
		Foreground: color.DefaultForeground,
		Background: color.DefaultBackground,
		MinOpacity: DefaultMinOpacity,
		RecentSize: DefaultRecentSize,
	}
}

type Session struct {
	mu         sync.Mutex
	fg         color.Color
	bg         color.Color
	minOpacity float64
	lastRatio  float64
	hasRatio   bool
	recent     *Recent
}

func New(opts Options) *Session {
	if opts.MinOpacity <= 0 {
		opts.MinOpacity = DefaultMinOpacity
	}
	return &Session{
		fg:         opts.Foreground,
		bg:         opts.Background,
		minOpacity: opts.MinOpacity,
		recent:     NewRecent(opts.RecentSize),
	}
}

func (s *Session) Color(role Role) color.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(role)
}

func (s *Session) Colors() (fg, bg color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fg, s.bg
}

// SetHex replaces the color of role from user text. On a parse error the
// previous color is kept.
func (s *Session) SetHex(role Role, text string) (color.Color, error) {
	c, err := color.ParseHex(color.EnsureHashPrefix(text))
	if err != nil {
		return s.Color(role), err
	}
	s.Set(role, c)
	return c, nil
}

// Set replaces the color of role and records it as recently used.
func (s *Session) Set(role Role, c color.Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(role, c)
	s.recent.Add(c)
}

func (s *Session) SetHSV(role Role, h, sat, v, a float64) color.Color {
	c := color.FromHSV(h, sat, v, a)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(role, c)
	return c
}

// SetSlider moves one slider of role. Out-of-range positions are clamped
// to the slider range.
func (s *Session) SetSlider(role Role, slider Slider, value int) color.Color {
	if value < 0 {
		value = 0
	}
	if value > slider.Max() {
		value = slider.Max()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(role)
	switch slider {
	case Hue:
		c = c.WithHue(float64(value) / 360.0)
	case Saturation:
		c = c.WithSaturation(float64(value) / 100.0)
	case Brightness:
		c = c.WithValue(float64(value) / 100.0)
	case Opacity:
		c = c.WithAlpha(float64(value) / 100.0)
	}
	s.put(role, c)
	return c
}

// Calculate computes the contrast between the current colors. When either
// color is too transparent it returns an *OpacityError and leaves the last
// ratio untouched.
func (s *Session) Calculate() (contrast.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := CheckOpacity(s.fg.Alpha(), s.bg.Alpha(), s.minOpacity); err != nil {
		return contrast.Result{}, err
	}

	result := contrast.Evaluate(s.fg, s.bg)
	s.lastRatio = result.Ratio
	s.hasRatio = true
	return result, nil
}

func (s *Session) LastRatio() (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRatio, s.hasRatio
}

// Recommendation gives advice for the last successful ratio.
func (s *Session) Recommendation() (contrast.Recommendation, error) {
	ratio, ok := s.LastRatio()
	if !ok {
		return contrast.Recommendation{}, ErrNoRatio
	}
	return contrast.Recommend(ratio), nil
}

func (s *Session) Recent() []color.Color {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recent.List()
}

func (s *Session) MinOpacity() float64 {
	return s.minOpacity
}

func (s *Session) get(role Role) color.Color {
	if role == Foreground {
		return s.fg
	}
	return s.bg
}

func (s *Session) put(role Role, c color.Color) {
	if role == Foreground {
		s.fg = c
	} else {
		s.bg = c
	}
}
