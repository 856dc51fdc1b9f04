package config

import (
	"github.com/spf13/viper"
)

type modrinth struct {
	Enabled        bool   `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	BaseURL        string `yaml:"base-url" json:"baseUrl" mapstructure:"base-url"`
	TimeoutSeconds int    `yaml:"timeout-seconds" json:"timeoutSeconds" mapstructure:"timeout-seconds"`
}

func (cfg modrinth) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("modrinth.enabled", true)
	v.SetDefault("modrinth.base-url", "")
	v.SetDefault("modrinth.timeout-seconds", 10)
}
