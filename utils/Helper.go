package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

var IsTestMode bool = false

const EnvPrefix = "VNEXPORT"

// InitializeViper loads configName.configType from the working directory
// (or ../ in test mode) on top of the environment. A missing file is fine,
// every key has a default.
func InitializeViper(v *viper.Viper, configName string, configType string) error {
	v.SetConfigName(configName)
	if IsTestMode {
		v.AddConfigPath("../")
	} else {
		v.AddConfigPath(".")
	}
	v.SetConfigType(configType)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// NewTraceId returns the identifier attached to every log line of one run.
func NewTraceId() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}
