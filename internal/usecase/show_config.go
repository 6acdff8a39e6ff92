package usecase

import (
	"context"

	"github.com/pelletier/go-toml/v2"

	"github.com/arun-karra/release-notes/internal/domain"
)

// ShowConfigOutput contains the resolved configuration.
// Fields are ordered to minimize memory padding.
type ShowConfigOutput struct {
	Config   *domain.Config
	Rendered string            // Resolved config serialized as TOML
	Local    domain.ConfigInfo // Working-directory config file
	Global   domain.ConfigInfo // Global config file
}

// ShowConfig is the use case for inspecting the resolved configuration.
type ShowConfig struct {
	loader  domain.ConfigLoader
	manager domain.ConfigManager
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(loader domain.ConfigLoader, manager domain.ConfigManager) *ShowConfig {
	return &ShowConfig{
		loader:  loader,
		manager: manager,
	}
}

// Execute loads the merged configuration and serializes it.
func (uc *ShowConfig) Execute(_ context.Context) (*ShowConfigOutput, error) {
	cfg, err := uc.loader.Load()
	if err != nil {
		return nil, err
	}

	rendered, err := toml.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	return &ShowConfigOutput{
		Config:   cfg,
		Rendered: string(rendered),
		Local:    uc.manager.LocalConfigInfo(),
		Global:   uc.manager.GlobalConfigInfo(),
	}, nil
}
