package store

import (
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the settings shared by the TUI and the CLI verbs.
type Config interface {
	DBPath() string
	PollInterval() time.Duration
	NotifyTimeout() time.Duration
}

// LoadConfig reads .reminder.yaml from the working directory (or the
// directory in REMINDER_CONFIG_PATH) with REMINDER_* environment overrides.
// A missing config file is fine; the defaults stand on their own.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.reminders.db")
	viper.SetDefault("interval", "30s")
	viper.SetDefault("notify_timeout", "5s")
	viper.SetConfigName(".reminder") // .yaml is implicit
	viper.SetEnvPrefix("REMINDER")
	viper.AutomaticEnv()

	if override := os.Getenv("REMINDER_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return &fileConfig{
		Path:     viper.GetString("path"),
		Interval: viper.GetDuration("interval"),
		Timeout:  viper.GetDuration("notify_timeout"),
	}, nil
}

type fileConfig struct {
	Path     string        `json:"path"`
	Interval time.Duration `json:"interval"`
	Timeout  time.Duration `json:"notify_timeout"`
}

func (f *fileConfig) DBPath() string {
	if expanded, err := homedir.Expand(f.Path); err == nil {
		return expanded
	}
	return f.Path
}

func (f *fileConfig) PollInterval() time.Duration {
	return f.Interval
}

func (f *fileConfig) NotifyTimeout() time.Duration {
	return f.Timeout
}
