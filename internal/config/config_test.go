package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/leonardotrapani/colorcontrast/internal/notify"
)

// createTestConfig returns a valid configuration for testing
func createTestConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Foreground: "#000000",
			Background: "#FFFFFF",
		},
		Check: CheckConfig{
			MinOpacity: 0.2,
		},
		Display: DisplayConfig{
			Theme:      "light",
			ShowAdvice: true,
		},
		History: HistoryConfig{
			Size: 16,
		},
		Notifications: NotificationsConfig{
			Enabled: true,
			Type:    "log",
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid config", mutate: func(c *Config) {}},
		{name: "translucent default is fine", mutate: func(c *Config) { c.Defaults.Foreground = "#00000080" }},
		{
			name:    "invalid foreground",
			mutate:  func(c *Config) { c.Defaults.Foreground = "#ZZZZZZ" },
			wantErr: "defaults.foreground",
		},
		{
			name:    "background without hash",
			mutate:  func(c *Config) { c.Defaults.Background = "FFFFFF" },
			wantErr: "defaults.background",
		},
		{
			name:    "zero min opacity",
			mutate:  func(c *Config) { c.Check.MinOpacity = 0 },
			wantErr: "check.min_opacity",
		},
		{
			name:    "min opacity above one",
			mutate:  func(c *Config) { c.Check.MinOpacity = 1.5 },
			wantErr: "check.min_opacity",
		},
		{
			name:    "unknown theme",
			mutate:  func(c *Config) { c.Display.Theme = "solarized" },
			wantErr: "display.theme",
		},
		{
			name:    "history too small",
			mutate:  func(c *Config) { c.History.Size = 0 },
			wantErr: "history.size",
		},
		{
			name:    "history too large",
			mutate:  func(c *Config) { c.History.Size = 65 },
			wantErr: "history.size",
		},
		{
			name:    "unknown notification type",
			mutate:  func(c *Config) { c.Notifications.Type = "email" },
			wantErr: "notifications.type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := createTestConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig() is invalid: %v", err)
	}
}

func TestGetConfigPath(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	path, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	expectedPath := filepath.Join(tempDir, "colorcontrast", "config.toml")
	if path != expectedPath {
		t.Errorf("GetConfigPath() = %s, want %s", path, expectedPath)
	}

	if _, err := os.Stat(filepath.Dir(path)); os.IsNotExist(err) {
		t.Errorf("GetConfigPath() did not create config directory")
	}
}

func TestConfig_Load(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		_, err := Load()
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("Load() error = %v, want ErrConfigNotFound", err)
		}

		cfg, err := LoadOrDefault()
		if err != nil {
			t.Fatalf("LoadOrDefault() error = %v", err)
		}
		if cfg.Defaults.Foreground != "#FF0000" {
			t.Errorf("LoadOrDefault() foreground = %q, want default", cfg.Defaults.Foreground)
		}
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `[defaults]
foreground = "#333333"

[display]
theme = "dark"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := LoadFrom(path)
		if err != nil {
			t.Fatalf("LoadFrom() error = %v", err)
		}
		if cfg.Defaults.Foreground != "#333333" {
			t.Errorf("foreground = %q, want #333333", cfg.Defaults.Foreground)
		}
		if cfg.Defaults.Background != "#FFFFFF" {
			t.Errorf("background = %q, want default #FFFFFF", cfg.Defaults.Background)
		}
		if cfg.Display.Theme != "dark" {
			t.Errorf("theme = %q, want dark", cfg.Display.Theme)
		}
		if !cfg.Display.ShowAdvice {
			t.Error("show_advice should keep its default")
		}
		if cfg.Check.MinOpacity != 0.2 {
			t.Errorf("min_opacity = %v, want 0.2", cfg.Check.MinOpacity)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[defaults\nforeground = "), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFrom(path); err == nil {
			t.Error("LoadFrom() expected parse error")
		}
	})
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := createTestConfig()
	cfg.History.Size = 8
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.History.Size != 8 || loaded.Display.Theme != "light" || loaded.Defaults.Foreground != "#000000" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}

	path, _ := GetConfigPath()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(content), "# ColorContrast configuration") {
		t.Error("saved config should start with the explanatory header")
	}
}

func TestConfig_ToSessionOptions(t *testing.T) {
	cfg := createTestConfig()
	cfg.Defaults.Foreground = "#123456"
	cfg.Check.MinOpacity = 0.5
	cfg.History.Size = 4

	opts := cfg.ToSessionOptions()
	if opts.Foreground.Hex() != "#123456" {
		t.Errorf("Foreground = %s, want #123456", opts.Foreground)
	}
	if opts.Background.Hex() != "#FFFFFF" {
		t.Errorf("Background = %s, want #FFFFFF", opts.Background)
	}
	if opts.MinOpacity != 0.5 {
		t.Errorf("MinOpacity = %v, want 0.5", opts.MinOpacity)
	}
	if opts.RecentSize != 4 {
		t.Errorf("RecentSize = %d, want 4", opts.RecentSize)
	}
}

func TestConfig_ToNotifier(t *testing.T) {
	cfg := createTestConfig()
	if _, ok := cfg.ToNotifier().(notify.Log); !ok {
		t.Errorf("ToNotifier() = %T, want notify.Log", cfg.ToNotifier())
	}
	cfg.Notifications.Enabled = false
	if _, ok := cfg.ToNotifier().(notify.Nop); !ok {
		t.Errorf("disabled ToNotifier() = %T, want notify.Nop", cfg.ToNotifier())
	}
}

func TestMessagesConfig_Resolve_Defaults(t *testing.T) {
	cfg := createTestConfig()
	msgs := cfg.Notifications.Messages.Resolve()

	if msgs[notify.MsgPairFailed].Title != "ColorContrast" {
		t.Errorf("MsgPairFailed title = %q, want %q", msgs[notify.MsgPairFailed].Title, "ColorContrast")
	}
	if msgs[notify.MsgPairFailed].Body != "Contrast check failed" {
		t.Errorf("MsgPairFailed body = %q", msgs[notify.MsgPairFailed].Body)
	}
	if !msgs[notify.MsgPaletteInvalid].IsError {
		t.Error("MsgPaletteInvalid should be an error message")
	}
}

func TestMessagesConfig_Resolve_CustomOverrides(t *testing.T) {
	cfg := createTestConfig()
	cfg.Notifications.Messages = MessagesConfig{
		PairFailed: MessageConfig{
			Title: "Custom Title",
			Body:  "Custom Body",
		},
		PaletteFixed: MessageConfig{
			Body: "All good",
		},
	}

	msgs := cfg.Notifications.Messages.Resolve()

	if msgs[notify.MsgPairFailed].Title != "Custom Title" {
		t.Errorf("MsgPairFailed title = %q, want %q", msgs[notify.MsgPairFailed].Title, "Custom Title")
	}
	if msgs[notify.MsgPairFailed].Body != "Custom Body" {
		t.Errorf("MsgPairFailed body = %q, want %q", msgs[notify.MsgPairFailed].Body, "Custom Body")
	}
	if msgs[notify.MsgPaletteFixed].Body != "All good" {
		t.Errorf("MsgPaletteFixed body = %q, want %q", msgs[notify.MsgPaletteFixed].Body, "All good")
	}
	if msgs[notify.MsgPaletteFixed].Title != "ColorContrast" {
		t.Errorf("MsgPaletteFixed title = %q, want default", msgs[notify.MsgPaletteFixed].Title)
	}
}

func TestManager_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveTo(path, createTestConfig()); err != nil {
		t.Fatal(err)
	}

	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	reloaded := make(chan *Config, 4)
	m.OnReload(func(c *Config) { reloaded <- c })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := m.StartWatching(ctx); err != nil {
		t.Fatalf("StartWatching() error = %v", err)
	}
	defer m.Stop()

	updated := createTestConfig()
	updated.Display.Theme = "dark"
	if err := SaveTo(path, updated); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-reloaded:
			if c.Display.Theme == "dark" {
				if m.GetConfig().Display.Theme != "dark" {
					t.Error("GetConfig() did not pick up reloaded theme")
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestManager_KeepsConfigOnInvalidReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveTo(path, createTestConfig()); err != nil {
		t.Fatal(err)
	}
	m, err := NewManager(path)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	if err := os.WriteFile(path, []byte("[display]\ntheme = \"neon\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	m.reloadConfig()

	if got := m.GetConfig().Display.Theme; got != "light" {
		t.Errorf("theme after invalid reload = %q, want light", got)
	}
}

func TestManager_MissingFileUsesDefaults(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	if m.GetConfig().Display.Theme != "auto" {
		t.Errorf("theme = %q, want auto", m.GetConfig().Display.Theme)
	}
}
