package config

import (
	"fmt"

	"github.com/leonardotrapani/colorcontrast/internal/color"
)

func (c *Config) Validate() error {
	if _, err := color.ParseHex(c.Defaults.Foreground); err != nil {
		return fmt.Errorf("invalid defaults.foreground: %w", err)
	}
	if _, err := color.ParseHex(c.Defaults.Background); err != nil {
		return fmt.Errorf("invalid defaults.background: %w", err)
	}

	if c.Check.MinOpacity <= 0 || c.Check.MinOpacity > 1 {
		return fmt.Errorf("invalid check.min_opacity: %v (must be above 0 and at most 1)", c.Check.MinOpacity)
	}

	validThemes := map[string]bool{"auto": true, "light": true, "dark": true}
	if !validThemes[c.Display.Theme] {
		return fmt.Errorf("invalid display.theme: %s (must be auto, light, or dark)", c.Display.Theme)
	}

	if c.History.Size < 1 || c.History.Size > 64 {
		return fmt.Errorf("invalid history.size: %d (must be between 1 and 64)", c.History.Size)
	}

	validTypes := map[string]bool{"desktop": true, "log": true, "none": true}
	if !validTypes[c.Notifications.Type] {
		return fmt.Errorf("invalid notifications.type: %s (must be desktop, log, or none)", c.Notifications.Type)
	}

	return nil
}
