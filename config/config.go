// Package config loads the analytics engine's run configuration via
// viper, in the style of the teacher's own profile loader.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/ahratul/inx-chronicle/analytics"
)

// Config is the engine's run configuration (spec §6 config surface).
type Config struct {
	NetworkName string `mapstructure:"network_name"`

	MilestoneAnalytics []analytics.Kind         `mapstructure:"milestone_analytics"`
	IntervalAnalytics  []analytics.Kind         `mapstructure:"interval_analytics"`
	IntervalKinds      []analytics.IntervalKind `mapstructure:"interval_kinds"`

	ActiveAddressesSlidingWindow time.Duration `mapstructure:"active_addresses_sliding_window"`

	LogLevel string `mapstructure:"log_level"`

	SinkAddr    string `mapstructure:"sink_addr"`
	DocStoreDir string `mapstructure:"docstore_dir"`
}

// Default returns the configuration used when no profile file is found.
func Default() Config {
	return Config{
		MilestoneAnalytics: analytics.AllMilestoneKinds(),
		IntervalAnalytics:  []analytics.Kind{analytics.KindAddressActivity},
		IntervalKinds:      []analytics.IntervalKind{analytics.IntervalDay},
		LogLevel:           "info",
	}
}

// ReadInConfig loads "<name>.yaml" (default "analytics-engine") from the
// current directory, falling back silently to Default if absent, the way
// the teacher's CLI tooling reads its profile (spec ambient config).
func ReadInConfig(name string) (Config, error) {
	if name == "" {
		name = "analytics-engine"
	}
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName(name)
	viper.AutomaticEnv()

	cfg := Default()
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s.yaml: %w", name, err)
	}
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
