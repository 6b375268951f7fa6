package app

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/tprintio/tprint"
	"github.com/tprintio/tprint/internal/config"
	"github.com/tprintio/tprint/internal/log"
	"github.com/tprintio/tprint/pkg/convert"
	apperrors "github.com/tprintio/tprint/pkg/errors"
)

// Bootstrap assembles the demo application from the resolved viper state
// plus the --scheme flag value. Demo output is rendered to out.
func Bootstrap(ctx context.Context, v *viper.Viper, schemeFlag string, out io.Writer) (*Application, error) {
	cfg := config.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeConfigParseError, "failed to unmarshal configuration")
	}

	// The scheme block arrives as map[string]any from YAML; coerce it
	// before the flag override is layered on top.
	schemeNames, err := convert.ToStringMap(v.Get("scheme"))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeConfigParseError, "invalid scheme block in configuration")
	}
	for level, colorName := range parseSchemeOverride(schemeFlag) {
		if schemeNames == nil {
			schemeNames = make(map[string]string)
		}
		schemeNames[level] = colorName
	}
	cfg.Scheme = schemeNames

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := log.NewLogger(log.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if v.ConfigFileUsed() != "" {
		logger.DebugContext(ctx, "using configuration file", "path", v.ConfigFileUsed())
	}

	colorMode := tprint.ColorAuto
	if cfg.NoColor {
		colorMode = tprint.ColorNever
		color.NoColor = true
	}

	printer, err := tprint.New(
		tprint.WithColorScheme(cfg.SchemeOverrides()),
		tprint.WithDebug(cfg.Debug),
		tprint.WithTimestamps(cfg.Timestamps),
		tprint.WithLogFile(cfg.LogFile),
		tprint.WithPurgeOldLogs(cfg.PurgeOldLogs),
		tprint.WithColorMode(colorMode),
		tprint.WithOutput(out),
	)
	if err != nil {
		return nil, err
	}

	logger.DebugContext(ctx, "printer initialized",
		"log_file", cfg.LogFile,
		"timestamps", cfg.Timestamps,
		"debug", cfg.Debug,
	)

	return &Application{
		Printer: printer,
		Logger:  logger,
		Config:  cfg,
		Out:     out,
	}, nil
}
