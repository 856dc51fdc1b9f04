package config

import (
	"github.com/spf13/viper"
)

// curseforge lookups only run when an API key is configured, typically
// via the MC_MOD_COMPAT_CHECK_CURSEFORGE_API_KEY environment variable.
type curseforge struct {
	APIKey         string `yaml:"api-key" json:"-" mapstructure:"api-key"`
	BaseURL        string `yaml:"base-url" json:"baseUrl" mapstructure:"base-url"`
	TimeoutSeconds int    `yaml:"timeout-seconds" json:"timeoutSeconds" mapstructure:"timeout-seconds"`
}

func (cfg curseforge) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("curseforge.api-key", "")
	v.SetDefault("curseforge.base-url", "")
	v.SetDefault("curseforge.timeout-seconds", 10)
}
