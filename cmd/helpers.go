package cmd

import (
	"fmt"

	"github.com/yassirfh/shopforge/internal/config"
	"github.com/yassirfh/shopforge/internal/store"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `shopforge init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadStore loads the store file named by the config.
func loadStore(cfg *config.Config) (*store.Store, error) {
	s, err := store.Load(cfg.StoreFile)
	if err != nil {
		return nil, fmt.Errorf("%w\nRun `shopforge init` to create a store", err)
	}
	return s, nil
}
