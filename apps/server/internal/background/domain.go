// Package background keeps the remote background configuration that the host
// application fetches, updates, syncs and resets to a preset. Switching,
// rotation timers and usage statistics live in the host application.
package background

import (
	"context"
	"strings"

	"github.com/tilsley/gallery/pkg/api"
)

// Store holds the current configuration.
type Store interface {
	// Load returns nil, nil when nothing has been saved yet.
	Load(ctx context.Context) (*api.BackgroundConfig, error)
	Save(ctx context.Context, cfg api.BackgroundConfig) error
}

// Validate checks both sides of cfg.
func Validate(cfg api.BackgroundConfig) error {
	if err := validateSide("pc", cfg.Pc); err != nil {
		return err
	}
	return validateSide("mobile", cfg.Mobile)
}

func validateSide(name string, s api.BackgroundSide) error {
	switch s.Type {
	case api.BackgroundTypePic, api.BackgroundTypeVideo:
	default:
		return InvalidConfigError{Field: name + ".type", Reason: `must be "pic" or "video"`}
	}
	if strings.TrimSpace(s.DataInfo.Url) == "" {
		return InvalidConfigError{Field: name + ".datainfo.url", Reason: "is required"}
	}
	return nil
}
