package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/tprintio/tprint"
	"github.com/tprintio/tprint/internal/log"
	apperrors "github.com/tprintio/tprint/pkg/errors"
)

// Config drives the demo CLI. Scheme maps level names to palette color
// names ("bright_blue", "bg_red", ...), not raw escape sequences; it is
// populated from the config file and the --scheme flag, then resolved
// through tprint.ParseColor.
type Config struct {
	Scheme       map[string]string `mapstructure:"-" validate:"omitempty,dive,keys,oneof=info warning error debug input critical success,endkeys,palettecolor"`
	Debug        bool              `mapstructure:"debug"`
	Timestamps   bool              `mapstructure:"timestamps"`
	LogFile      string            `mapstructure:"log_file"`
	PurgeOldLogs bool              `mapstructure:"purge_old_logs"`
	NoColor      bool              `mapstructure:"no_color"`
	NoInput      bool              `mapstructure:"no_input"`
	LogLevel     log.Level         `mapstructure:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFormat    log.Format        `mapstructure:"log_format" validate:"omitempty,oneof=text json"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:  log.LevelInfo,
		LogFormat: log.FormatText,
	}
}

func (c *Config) Validate() error {
	v := validator.New()
	err := v.RegisterValidation("palettecolor", func(fl validator.FieldLevel) bool {
		_, ok := tprint.ParseColor(fl.Field().String())
		return ok
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "failed to register config validators")
	}
	if err := v.Struct(c); err != nil {
		return apperrors.Wrap(err, apperrors.CodeConfigValidation, "invalid configuration")
	}
	return nil
}

// SchemeOverrides resolves the configured color names into a ColorScheme
// ready to hand to tprint.New. Call Validate first; unknown names fail
// there with field-level detail.
func (c *Config) SchemeOverrides() tprint.ColorScheme {
	if len(c.Scheme) == 0 {
		return nil
	}
	scheme := make(tprint.ColorScheme, len(c.Scheme))
	for level, name := range c.Scheme {
		if seq, ok := tprint.ParseColor(name); ok {
			scheme[tprint.Level(level)] = seq
		}
	}
	return scheme
}
