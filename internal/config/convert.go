package config

import (
	"github.com/leonardotrapani/colorcontrast/internal/color"
	"github.com/leonardotrapani/colorcontrast/internal/notify"
	"github.com/leonardotrapani/colorcontrast/internal/session"
)

// ToSessionOptions builds session options from a validated config.
// Unparseable default colors fall back to the built-in defaults.
func (c *Config) ToSessionOptions() session.Options {
	opts := session.DefaultOptions()
	if fg, err := color.ParseHex(c.Defaults.Foreground); err == nil {
		opts.Foreground = fg
	}
	if bg, err := color.ParseHex(c.Defaults.Background); err == nil {
		opts.Background = bg
	}
	if c.Check.MinOpacity > 0 {
		opts.MinOpacity = c.Check.MinOpacity
	}
	if c.History.Size > 0 {
		opts.RecentSize = c.History.Size
	}
	return opts
}

// ToNotifier returns the notifier selected by [notifications].
func (c *Config) ToNotifier() notify.Notifier {
	if !c.Notifications.Enabled {
		return notify.Nop{}
	}
	return notify.New(c.Notifications.Type)
}
