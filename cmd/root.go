package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tprintio/tprint/internal/app"
	apperrors "github.com/tprintio/tprint/pkg/errors"
)

var (
	cfgFile        string
	schemeOverride string
)

var rootCmd = &cobra.Command{
	Use:   "tprint",
	Short: "Showcases leveled, colorized console printing with optional file logging.",
	Long: `tprint walks through every feature of the tprint package: leveled
colorized output with symbols and styles, optional timestamps, interactive
input, live reconfiguration, and append-only file logging.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.Bootstrap(cmd.Context(), viper.GetViper(), schemeOverride, os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: initialization failed: %v\n", err)
			if userMsg, suggestion, ok := apperrors.GetUserFacingMessage(err); ok {
				fmt.Fprintf(os.Stderr, "Error Details: %s\n", userMsg)
				if suggestion != "" {
					fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
				}
			}
			return err
		}

		runErr := application.Run(cmd.Context())
		if runErr != nil {
			userMsg, suggestion, _ := apperrors.GetUserFacingMessage(runErr)
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", userMsg)
			if suggestion != "" {
				fmt.Fprintf(os.Stderr, "Suggestion: %s\n", suggestion)
			}
			return runErr
		}
		return nil
	},
}

func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path (default is .tprint.yaml in the working directory or home)")
	rootCmd.PersistentFlags().String("log-file", "", "Append records to this file")
	rootCmd.PersistentFlags().Bool("timestamps", false, "Timestamp every record")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug-level output")
	rootCmd.PersistentFlags().Bool("purge-old-logs", false, "Truncate the log file on the first write")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Bool("no-input", false, "Skip the interactive input section")
	rootCmd.PersistentFlags().StringVar(&schemeOverride, "scheme", "", "Override level colors (e.g. 'info=bright_blue,success=green')")
	rootCmd.PersistentFlags().String("log-level", "", "Diagnostics log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "Diagnostics log format (text, json)")

	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("timestamps", rootCmd.PersistentFlags().Lookup("timestamps"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("purge_old_logs", rootCmd.PersistentFlags().Lookup("purge-old-logs"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("no_input", rootCmd.PersistentFlags().Lookup("no-input"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	viper.SetEnvPrefix("TPRINT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func initializeConfig(cmd *cobra.Command) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(".")
		viper.AddConfigPath(home)
		viper.SetConfigName(".tprint")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return apperrors.Wrap(err, apperrors.CodeConfigReadError, "failed to read config file")
		}
	}
	return nil
}
