// Package palette loads named foreground/background pairs from a file and
// checks each of them.
package palette

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/leonardotrapani/colorcontrast/internal/color"
	"github.com/leonardotrapani/colorcontrast/internal/contrast"
	"github.com/leonardotrapani/colorcontrast/internal/session"
)

var ErrEmptyPalette = errors.New("palette has no pairs")

type Pair struct {
	Name       string `toml:"name" yaml:"name"`
	Foreground string `toml:"foreground" yaml:"foreground"`
	Background string `toml:"background" yaml:"background"`
}

type Palette struct {
	MinOpacity float64 `toml:"min_opacity" yaml:"min_opacity"`
	Pairs      []Pair  `toml:"pair" yaml:"pairs"`
}

// Outcome is the result of checking one pair. Err is set when the pair
// could not be measured (bad hex or too transparent).
type Outcome struct {
	Pair       Pair
	Foreground color.Color
	Background color.Color
	Result     contrast.Result
	Err        error
}

// Passes reports whether the pair was measured and meets AA for normal text.
func (o Outcome) Passes() bool {
	return o.Err == nil && o.Result.Passes()
}

// Load reads a palette from a .toml, .yaml or .yml file.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Palette
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported palette extension: %s", ext)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &p, nil
}

func (p *Palette) Validate() error {
	if len(p.Pairs) == 0 {
		return ErrEmptyPalette
	}
	if p.MinOpacity < 0 || p.MinOpacity > 1 {
		return fmt.Errorf("invalid min_opacity: %v (must be between 0 and 1)", p.MinOpacity)
	}
	for i, pair := range p.Pairs {
		name := pair.label(i)
		if _, err := color.ParseHex(color.EnsureHashPrefix(pair.Foreground)); err != nil {
			return fmt.Errorf("pair %s: foreground: %w", name, err)
		}
		if _, err := color.ParseHex(color.EnsureHashPrefix(pair.Background)); err != nil {
			return fmt.Errorf("pair %s: background: %w", name, err)
		}
	}
	return nil
}

// Evaluate checks every pair. A min_opacity in the file overrides
// minOpacity.
func (p *Palette) Evaluate(minOpacity float64) []Outcome {
	if p.MinOpacity > 0 {
		minOpacity = p.MinOpacity
	}

	outcomes := make([]Outcome, 0, len(p.Pairs))
	for i, pair := range p.Pairs {
		pair.Name = pair.label(i)
		outcomes = append(outcomes, evaluatePair(pair, minOpacity))
	}
	return outcomes
}

// Failing returns the outcomes that do not pass.
func Failing(outcomes []Outcome) []Outcome {
	var failed []Outcome
	for _, o := range outcomes {
		if !o.Passes() {
			failed = append(failed, o)
		}
	}
	return failed
}

func evaluatePair(pair Pair, minOpacity float64) Outcome {
	opts := session.DefaultOptions()
	opts.MinOpacity = minOpacity
	s := session.New(opts)

	out := Outcome{Pair: pair}
	fg, err := s.SetHex(session.Foreground, pair.Foreground)
	if err != nil {
		out.Err = fmt.Errorf("foreground: %w", err)
		return out
	}
	bg, err := s.SetHex(session.Background, pair.Background)
	if err != nil {
		out.Err = fmt.Errorf("background: %w", err)
		return out
	}
	out.Foreground, out.Background = fg, bg

	out.Result, out.Err = s.Calculate()
	return out
}

func (p Pair) label(i int) string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("#%d", i+1)
}
