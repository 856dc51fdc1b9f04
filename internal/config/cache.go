package config

import (
	"path"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/EricDasha/mc-mod-compat-check/internal"
)

type cache struct {
	Enabled bool   `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	Dir     string `yaml:"dir" json:"dir" mapstructure:"dir"`
}

func (cfg cache) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("cache.enabled", true)
	// e.g. ~/.cache/mc-mod-compat-check
	v.SetDefault("cache.dir", path.Join(xdg.CacheHome, internal.ApplicationName))
}
