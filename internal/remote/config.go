package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"snaken/pkg/snaken"
)

// EpisodeConfig holds the settings new episodes start from.
type EpisodeConfig struct {
	Width            int   `json:"width"`
	Height           int   `json:"height"`
	Seed             int64 `json:"seed"`
	Speed            int   `json:"speed"`
	Stamina          int   `json:"stamina"`
	Apples           int   `json:"apples"`
	ViewRadius       int   `json:"view_radius"`
	StartLength      int   `json:"start_length"`
	SelfIntersection bool  `json:"self_intersection"`
}

// ServerConfig is the JSON configuration file of the remote surface.
type ServerConfig struct {
	Port            string        `json:"port"`
	MaxEpisodes     int           `json:"max_episodes"`
	MaxStepsPerCall int           `json:"max_steps_per_call"`
	Episode         EpisodeConfig `json:"episode"`
}

// DefaultServerConfig returns the configuration written when no file exists.
// A zero episode seed derives a fresh seed from each episode ID.
func DefaultServerConfig() ServerConfig {
	def := snaken.DefaultConfig()
	return ServerConfig{
		Port:            "38870",
		MaxEpisodes:     64,
		MaxStepsPerCall: 1000,
		Episode: EpisodeConfig{
			Width:            def.Width,
			Height:           def.Height,
			Seed:             0,
			Speed:            int(snaken.MaxSpeed),
			Stamina:          def.Params.Stamina,
			Apples:           def.Params.Apples,
			ViewRadius:       def.Params.ViewRadius,
			StartLength:      def.Params.StartLength,
			SelfIntersection: def.Params.SelfIntersection,
		},
	}
}

// World converts the episode settings into a world configuration.
func (e EpisodeConfig) World() (snaken.Config, error) {
	if e.Speed < 0 || e.Speed > int(snaken.MaxSpeed) {
		return snaken.Config{}, fmt.Errorf("speed %d: %w", e.Speed, snaken.ErrInvalidParameter)
	}
	cfg := snaken.Config{
		Width:  e.Width,
		Height: e.Height,
		Seed:   e.Seed,
		Params: snaken.Params{
			Speed:            uint8(e.Speed),
			Stamina:          e.Stamina,
			Apples:           e.Apples,
			ViewRadius:       e.ViewRadius,
			StartLength:      e.StartLength,
			SelfIntersection: e.SelfIntersection,
		},
	}
	return cfg, cfg.Validate()
}

func (c ServerConfig) validate() error {
	if c.MaxEpisodes <= 0 {
		return fmt.Errorf("max_episodes must be positive, got %d", c.MaxEpisodes)
	}
	if c.MaxStepsPerCall <= 0 {
		return fmt.Errorf("max_steps_per_call must be positive, got %d", c.MaxStepsPerCall)
	}
	if _, err := c.Episode.World(); err != nil {
		return fmt.Errorf("episode defaults: %w", err)
	}
	return nil
}

// ConfigStore holds the live server configuration and reloads it when the
// backing file changes.
type ConfigStore struct {
	path string

	mu  sync.RWMutex
	cfg ServerConfig
}

// NewConfigStore wraps a fixed configuration without a backing file.
func NewConfigStore(cfg ServerConfig) *ConfigStore {
	return &ConfigStore{cfg: cfg}
}

// LoadConfig reads the configuration at path, writing the defaults there
// first when the file does not exist.
func LoadConfig(path string) (*ConfigStore, error) {
	s := &ConfigStore{path: path, cfg: DefaultServerConfig()}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := s.save(); err != nil {
			return nil, err
		}
		log.Printf("wrote default config to %s", path)
		return s, nil
	}
	if err := s.reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns a copy of the live configuration.
func (s *ConfigStore) Current() ServerConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

func (s *ConfigStore) save() error {
	data, err := json.MarshalIndent(s.cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, append(data, '\n'), 0o644)
}

// reload parses the file over the defaults. An invalid file leaves the
// previous configuration in place.
func (s *ConfigStore) reload() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	cfg := DefaultServerConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}
	if err := cfg.validate(); err != nil {
		return fmt.Errorf("%s: %w", s.path, err)
	}
	s.mu.Lock()
	s.cfg = cfg
	s.mu.Unlock()
	return nil
}

// Watch reloads the configuration whenever the file is written or replaced,
// until ctx is cancelled. onReload, when set, runs after each successful
// reload. The parent directory is watched so editors that save by renaming
// are picked up too.
func (s *ConfigStore) Watch(ctx context.Context, onReload func(ServerConfig)) error {
	if s.path == "" {
		return errors.New("config store has no backing file")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return err
	}
	target := filepath.Clean(s.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := s.reload(); err != nil {
				log.Printf("config reload: %v", err)
				continue
			}
			log.Printf("reloaded config from %s", s.path)
			if onReload != nil {
				onReload(s.Current())
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("config watcher: %v", err)
		}
	}
}
