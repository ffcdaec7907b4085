package config

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Foreground: "#FF0000",
			Background: "#FFFFFF",
		},
		Check: CheckConfig{
			MinOpacity: 0.2,
		},
		Display: DisplayConfig{
			Theme:      "auto",
			ShowAdvice: true,
		},
		History: HistoryConfig{
			Size: 16,
		},
		Notifications: NotificationsConfig{
			Enabled: false,
			Type:    "log",
		},
	}
}
