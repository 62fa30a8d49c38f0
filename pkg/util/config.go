package util

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ReadConfig. reads ./data/config.{yaml,json,...} if it exists. a missing config file is not an error,
// every key has a default and can be overridden by env.
func ReadConfig() error {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
