package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// check holds the options that shape how compatibility is judged. An
// unrecognized loader is not rejected here: the pipeline reports it
// per-file, which keeps CLI and library behavior identical.
type check struct {
	Loader  string `yaml:"loader" json:"loader" mapstructure:"loader"`    // --loader, the loader the target environment runs
	Relaxed bool   `yaml:"relaxed" json:"relaxed" mapstructure:"relaxed"` // --relaxed, widen version matching to the major.minor series
	Workers int    `yaml:"workers" json:"workers" mapstructure:"workers"` // fingerprinting worker count
}

func (cfg check) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("check.loader", "")
	v.SetDefault("check.relaxed", false)
	v.SetDefault("check.workers", 4)
}

func (cfg *check) parseConfigValues() error {
	cfg.Loader = strings.ToLower(strings.TrimSpace(cfg.Loader))
	if cfg.Workers < 1 {
		return fmt.Errorf("check.workers must be positive (got %d)", cfg.Workers)
	}
	return nil
}
