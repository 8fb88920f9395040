package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// parseEnv overlays cfg with FOORUM_* variables. Unset variables leave the
// current value alone. A nil lookuper reads the process environment.
func parseEnv(cfg *Config, l envconfig.Lookuper) {
	if l == nil {
		l = envconfig.OsLookuper()
	}
	err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   cfg,
		Lookuper: l,
	})
	if err != nil {
		panic(err)
	}
}
