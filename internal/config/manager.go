package config

import (
	"context"
	"log"
	"sync"

	"github.com/leonardotrapani/colorcontrast/internal/filewatch"
)

type Manager struct {
	mu       sync.RWMutex
	path     string
	config   *Config
	watcher  *filewatch.Watcher
	onReload func(*Config)
}

// NewManager loads the config at path (defaults when the file is missing).
func NewManager(path string) (*Manager, error) {
	log.Printf("Config manager: initializing configuration system...")

	config, err := LoadFrom(path)
	if err != nil {
		if !isNotFound(err) {
			log.Printf("Config manager: failed to load initial configuration: %v", err)
			return nil, err
		}
		config = DefaultConfig()
	}

	log.Printf("Config manager: validating initial configuration...")
	if err := config.Validate(); err != nil {
		log.Printf("Config manager: validation warning: %v", err)
	}

	m := &Manager{
		path:   path,
		config: config,
	}

	log.Printf("Config manager: initialization completed successfully")
	return m, nil
}

func (m *Manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// OnReload registers a callback run after every successful reload.
func (m *Manager) OnReload(fn func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onReload = fn
}

func (m *Manager) StartWatching(ctx context.Context) error {
	m.watcher = filewatch.New(m.path, func(string) { m.reloadConfig() })
	return m.watcher.Start(ctx)
}

func (m *Manager) Stop() {
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

func (m *Manager) reloadConfig() {
	log.Printf("Config manager: starting configuration reload...")

	newConfig, err := LoadFrom(m.path)
	if err != nil {
		log.Printf("Config manager: failed to reload config: %v", err)
		return
	}

	log.Printf("Config manager: validating new configuration...")
	if err := newConfig.Validate(); err != nil {
		log.Printf("Config manager: invalid config after reload: %v", err)
		return
	}

	m.mu.Lock()
	m.config = newConfig
	onReload := m.onReload
	m.mu.Unlock()

	log.Printf("Config manager: configuration successfully reloaded")
	if onReload != nil {
		configCopy := *newConfig
		onReload(&configCopy)
	}
}
