package config

import (
	"errors"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/ayoisaiah/locktfin/internal/catalog"
)

const envPrefix = "LOCKTFIN"

const (
	keySessionDuration      = "session.duration"
	keySessionPresets       = "session.presets"
	keyNotificationsEnabled = "notifications.enabled"
	keySessionCmd           = "settings.cmd"
	keyExitKey              = "settings.exit_key"
	keyDarkTheme            = "display.dark_theme"
	keyDateFormat           = "display.date_format"
	keyApps                 = "apps"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath, writing the defaults there first if it does not exist.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keySessionDuration, 60)
	v.SetDefault(keySessionPresets, []int{15, 30, 60, 90})
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyExitKey, "ctrl+e")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyDateFormat, "1/2/2006")

	apps := make([]map[string]any, len(catalog.Defaults))

	for i, app := range catalog.Defaults {
		apps[i] = map[string]any{
			"name": app.Name,
			"path": app.Path,
			"icon": app.Icon,
		}
	}

	v.SetDefault(keyApps, apps)
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}
