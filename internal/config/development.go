package config

import (
	"github.com/spf13/viper"
)

type development struct {
	ProfileCPU bool `yaml:"profile-cpu" json:"profileCPU" mapstructure:"profile-cpu"`
}

func (cfg development) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("dev.profile-cpu", false)
}
