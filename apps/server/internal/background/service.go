package background

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/tilsley/gallery/pkg/api"
)

// Service is the use-case layer for the remote background configuration.
type Service struct {
	store   Store
	presets map[string]api.BackgroundConfig
	log     *slog.Logger
}

// NewService creates a Service. Presets failing validation are dropped with a
// warning; nil presets means DefaultPresets.
func NewService(store Store, presets map[string]api.BackgroundConfig, log *slog.Logger) *Service {
	if presets == nil {
		presets = DefaultPresets()
	}
	valid := make(map[string]api.BackgroundConfig, len(presets))
	for name, p := range presets {
		if err := Validate(p); err != nil {
			log.Warn("skipping invalid background preset", "preset", name, "error", err)
			continue
		}
		valid[name] = p
	}
	return &Service{store: store, presets: valid, log: log}
}

// Current returns the saved configuration, or nil if none was saved.
func (s *Service) Current(ctx context.Context) (*api.BackgroundConfig, error) {
	cfg, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load background: %w", err)
	}
	return cfg, nil
}

// Update validates and saves cfg.
func (s *Service) Update(ctx context.Context, cfg api.BackgroundConfig) (*api.BackgroundConfig, error) {
	if err := s.save(ctx, cfg); err != nil {
		return nil, err
	}
	s.log.Info("background updated", "pc", cfg.Pc.DataInfo.Title, "mobile", cfg.Mobile.DataInfo.Title)
	return &cfg, nil
}

// Sync stores the configuration currently shown by a client as the remote one.
func (s *Service) Sync(ctx context.Context, cfg api.BackgroundConfig) (*api.BackgroundConfig, error) {
	if err := s.save(ctx, cfg); err != nil {
		return nil, err
	}
	s.log.Info("background synced from client", "pc", cfg.Pc.DataInfo.Title, "mobile", cfg.Mobile.DataInfo.Title)
	return &cfg, nil
}

// Presets returns the configured preset names in sorted order.
func (s *Service) Presets() []string {
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset saves the named preset as the current configuration.
func (s *Service) ApplyPreset(ctx context.Context, name string) (*api.BackgroundConfig, error) {
	p, ok := s.presets[name]
	if !ok {
		return nil, PresetNotFoundError{Name: name}
	}
	if err := s.store.Save(ctx, p); err != nil {
		return nil, fmt.Errorf("save background: %w", err)
	}
	s.log.Info("background preset applied", "preset", name)
	return &p, nil
}

func (s *Service) save(ctx context.Context, cfg api.BackgroundConfig) error {
	if err := Validate(cfg); err != nil {
		return err
	}
	if err := s.store.Save(ctx, cfg); err != nil {
		return fmt.Errorf("save background: %w", err)
	}
	return nil
}
