package testutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/leonardotrapani/colorcontrast/internal/config"
)

// TestConfig returns a valid configuration for testing
func TestConfig() *config.Config {
	return &config.Config{
		Defaults: config.DefaultsConfig{
			Foreground: "#FF0000",
			Background: "#FFFFFF",
		},
		Check: config.CheckConfig{
			MinOpacity: 0.2,
		},
		Display: config.DisplayConfig{
			Theme:      "light",
			ShowAdvice: false,
		},
		History: config.HistoryConfig{
			Size: 16,
		},
		Notifications: config.NotificationsConfig{
			Enabled: true,
			Type:    "log",
		},
	}
}

// TestConfigWithInvalidValues returns a config with invalid values for testing validation
func TestConfigWithInvalidValues() *config.Config {
	cfg := TestConfig()
	cfg.Defaults.Foreground = "red"
	cfg.Check.MinOpacity = 1.5
	cfg.Display.Theme = "sepia"
	cfg.History.Size = 0
	return cfg
}

// CreateTempFile writes content to name inside a fresh temp dir
func CreateTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file %s: %v", name, err)
	}
	return path
}

// WaitForCondition waits for a condition to be true or times out
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("Condition not met within %v", timeout)
}

// MockNotifier implements notify.Notifier and records every call
type MockNotifier struct {
	mu       sync.Mutex
	notes    []string
	failures []string
}

func (m *MockNotifier) Notify(title, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes = append(m.notes, title+": "+message)
}

func (m *MockNotifier) Error(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, msg)
}

// Notes returns the "title: message" pairs passed to Notify
func (m *MockNotifier) Notes() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.notes...)
}

// Errors returns the messages passed to Error
func (m *MockNotifier) Errors() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.failures...)
}
