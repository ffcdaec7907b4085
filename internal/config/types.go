package config

import (
	"reflect"

	"github.com/leonardotrapani/colorcontrast/internal/notify"
)

type Config struct {
	Defaults      DefaultsConfig      `toml:"defaults"`
	Check         CheckConfig         `toml:"check"`
	Display       DisplayConfig       `toml:"display"`
	History       HistoryConfig       `toml:"history"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// DefaultsConfig holds the colors a new session starts with
type DefaultsConfig struct {
	Foreground string `toml:"foreground"`
	Background string `toml:"background"`
}

type CheckConfig struct {
	MinOpacity float64 `toml:"min_opacity"` // alpha under which no ratio is computed
}

type DisplayConfig struct {
	Theme      string `toml:"theme"` // "auto", "light", "dark"
	ShowAdvice bool   `toml:"show_advice"`
}

type HistoryConfig struct {
	Size int `toml:"size"` // recently used colors kept by the interactive session
}

type NotificationsConfig struct {
	Enabled  bool           `toml:"enabled"`
	Type     string         `toml:"type"` // "desktop", "log", "none"
	Messages MessagesConfig `toml:"messages"`
}

type MessageConfig struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

type MessagesConfig struct {
	PairFailed     MessageConfig `toml:"pair_failed"`
	PaletteFixed   MessageConfig `toml:"palette_fixed"`
	PaletteInvalid MessageConfig `toml:"palette_invalid"`
}

// Resolve merges user config with defaults from MessageDefs
func (m *MessagesConfig) Resolve() map[notify.MessageType]notify.Message {
	result := make(map[notify.MessageType]notify.Message)

	v := reflect.ValueOf(m).Elem()
	t := v.Type()
	tagToField := make(map[string]int)
	for i := 0; i < t.NumField(); i++ {
		tagToField[t.Field(i).Tag.Get("toml")] = i
	}

	for _, def := range notify.MessageDefs {
		msg := notify.Message{
			Title:   def.DefaultTitle,
			Body:    def.DefaultBody,
			IsError: def.IsError,
		}
		if idx, ok := tagToField[def.ConfigKey]; ok {
			userMsg := v.Field(idx).Interface().(MessageConfig)
			if userMsg.Title != "" {
				msg.Title = userMsg.Title
			}
			if userMsg.Body != "" {
				msg.Body = userMsg.Body
			}
		}
		result[def.Type] = msg
	}
	return result
}
