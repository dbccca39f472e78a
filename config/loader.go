package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	// ProjectConfigFile is the name of the project-level domain config file.
	ProjectConfigFile = "semspec-domain.yaml"
	// UserConfigDir is the directory for user-level config.
	UserConfigDir = ".config/semspec"
	// UserConfigFile is the name of the user-level domain config file.
	UserConfigFile = "domain.yaml"
)

// Loader loads a domain Config with layered precedence (defaults, then
// user config, then project config) and optionally watches the project
// config file for changes, swapping in a new immutable snapshot whenever
// it is rewritten.
type Loader struct {
	logger *slog.Logger

	mu      sync.RWMutex
	current *Config

	watcher *fsnotify.Watcher
	done    chan struct{}
	reloads atomic.Int64
}

// NewLoader creates a Loader. logger defaults to slog.Default() if nil.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, current: DefaultConfig()}
}

// Load loads configuration with layered precedence:
//  1. Default config (empty specialization table)
//  2. User config (~/.config/semspec/domain.yaml)
//  3. Project config (semspec-domain.yaml in the current directory)
//
// The loaded snapshot becomes the Loader's current config, retrievable
// (and, if Watch was called, hot-reloadable) via ProcessRootWord.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if userPath := l.userConfigPath(); userPath != "" {
		if userCfg, err := LoadFromFile(userPath); err == nil {
			l.logger.Debug("loaded user domain config", slog.String("path", userPath))
			cfg.Merge(userCfg)
		} else if !errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("failed to load user domain config", slog.String("path", userPath), slog.String("error", err.Error()))
		}
	}

	if projectCfg, err := LoadFromFile(ProjectConfigFile); err == nil {
		l.logger.Debug("loaded project domain config", slog.String("path", ProjectConfigFile))
		cfg.Merge(projectCfg)
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.current = cfg
	l.mu.Unlock()
	return cfg, nil
}

func (l *Loader) userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}

// ProcessRootWord implements entity.DomainConfigLoader directly on the
// Loader, reading the current snapshot under its read lock so a
// concurrent Watch-triggered reload never races a pipeline call.
func (l *Loader) ProcessRootWord(head string) (string, bool) {
	l.mu.RLock()
	cfg := l.current
	l.mu.RUnlock()
	if cfg == nil {
		return "", false
	}
	return cfg.ProcessRootWord(head)
}

// Watch starts watching the project config file for writes, reloading
// and atomically swapping the current snapshot whenever it changes.
// Debounced the way source-ingester's DocWatcher debounces filesystem
// events: a single 200ms settle timer, so a burst of writes from one
// save produces one reload.
func (l *Loader) Watch() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(ProjectConfigFile)
	if dir == "" {
		dir = "."
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return err
	}
	l.watcher = w
	l.done = make(chan struct{})
	go l.watchLoop()
	return nil
}

func (l *Loader) watchLoop() {
	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case <-l.done:
			return
		case ev, ok := <-l.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(ev.Name) != ProjectConfigFile {
				continue
			}
			if !pending {
				pending = true
				debounce.Reset(200 * time.Millisecond)
			}
		case <-debounce.C:
			pending = false
			if _, err := l.Load(); err != nil {
				l.logger.Warn("domain config reload failed", slog.String("error", err.Error()))
				continue
			}
			l.reloads.Add(1)
			l.logger.Info("reloaded domain config", slog.String("path", ProjectConfigFile))
		case err, ok := <-l.watcher.Errors:
			if !ok {
				return
			}
			l.logger.Warn("domain config watcher error", slog.String("error", err.Error()))
		}
	}
}

// Reloads reports how many times Watch has swapped in a new snapshot.
func (l *Loader) Reloads() int64 { return l.reloads.Load() }

// Stop shuts down the watch goroutine started by Watch; a no-op if Watch
// was never called.
func (l *Loader) Stop() error {
	if l.watcher == nil {
		return nil
	}
	close(l.done)
	return l.watcher.Close()
}
