package config

import (
	"lendbook/core"

	configUtil "github.com/fox-one/pkg/config"
)

const (
	defaultSecondsPerBlock = 15
	defaultStorePath       = "lendbook.db"
	defaultIssuer          = "lendbook"
)

// Load load config file
func Load(configFile string, config *core.Config) error {
	configUtil.AutomaticLoadEnv("LENDBOOK")
	if err := configUtil.LoadYaml(configFile, config); err != nil {
		return err
	}

	defaults(config)
	return nil
}

func defaults(cfg *core.Config) {
	if cfg.App.SecondsPerBlock <= 0 {
		cfg.App.SecondsPerBlock = defaultSecondsPerBlock
	}

	if cfg.Store.Engine == "" {
		cfg.Store.Engine = core.StoreEngineLevelDB
	}

	if cfg.Store.Engine == core.StoreEngineLevelDB && cfg.Store.Path == "" {
		cfg.Store.Path = defaultStorePath
	}

	if cfg.Session.Issuer == "" {
		cfg.Session.Issuer = defaultIssuer
	}
}
