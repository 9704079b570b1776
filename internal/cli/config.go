// Config loading for the makery CLI.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// Config keys.
	cfgKeyRegion       = "region"
	cfgKeyProfile      = "profile"
	cfgKeyDataDir      = "data_dir"
	cfgKeyBuildTimeout = "build_timeout_seconds"

	// Defaults.
	defaultRegion       = "region-a"
	defaultProfile      = "primary"
	defaultBuildTimeout = 30
)

// loadConfig reads config.yaml from the resolved config directory using
// Viper. A missing config directory or config.yaml is not an error; the
// defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyRegion, defaultRegion)
	v.SetDefault(cfgKeyProfile, defaultProfile)
	v.SetDefault(cfgKeyBuildTimeout, defaultBuildTimeout)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return v, nil
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}
