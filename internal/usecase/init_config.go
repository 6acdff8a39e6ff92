package usecase

import (
	"context"
	"fmt"

	"github.com/arun-karra/release-notes/internal/domain"
)

// InitConfigInput contains the parameters for initializing a config file.
type InitConfigInput struct {
	Global bool // Write the global config instead of the working-directory one
}

// InitConfigOutput contains the result of initialization.
type InitConfigOutput struct {
	Path string // Path of the written config file
}

// InitConfig is the use case for writing a config file template.
type InitConfig struct {
	manager domain.ConfigManager
	logger  domain.Logger
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(manager domain.ConfigManager, logger domain.Logger) *InitConfig {
	return &InitConfig{
		manager: manager,
		logger:  logger,
	}
}

// Execute writes the config template to the selected location.
func (uc *InitConfig) Execute(_ context.Context, in InitConfigInput) (*InitConfigOutput, error) {
	var info domain.ConfigInfo
	var err error
	if in.Global {
		info = uc.manager.GlobalConfigInfo()
		err = uc.manager.InitGlobalConfig()
	} else {
		info = uc.manager.LocalConfigInfo()
		err = uc.manager.InitLocalConfig()
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("config", fmt.Sprintf("wrote config template to %s", info.Path))
	return &InitConfigOutput{Path: info.Path}, nil
}
