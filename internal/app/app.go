// Package app wires the demo CLI together and walks every feature of the
// tprint package in sequence: leveled output, styles, interactive input,
// live reconfiguration, and the log-file tail.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"

	"github.com/tprintio/tprint"
	"github.com/tprintio/tprint/internal/config"
)

type Application struct {
	Printer *tprint.Printer
	Logger  *slog.Logger
	Config  *config.Config
	Out     io.Writer
}

func (a *Application) Run(ctx context.Context) error {
	a.Logger.InfoContext(ctx, "starting tprint showcase")

	steps := []func() error{
		a.showcaseLevels,
		a.showcaseInput,
		a.showcaseReconfiguration,
		a.showcaseLogFile,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step(); err != nil {
			a.Logger.ErrorContext(ctx, "showcase step failed", "error", err)
			return err
		}
	}

	a.Logger.InfoContext(ctx, "showcase finished")
	return nil
}

func (a *Application) showcaseLevels() error {
	tprint.FSeparator(a.Out, "Leveled output with styles", tprint.Magenta)

	if err := a.Printer.Info("Informational message", tprint.WithStyle(tprint.Bold)); err != nil {
		return err
	}
	if err := a.Printer.Warning("Warning message", tprint.WithStyle(tprint.Underline)); err != nil {
		return err
	}
	if err := a.Printer.Error("Error message", tprint.WithStyle(tprint.Reversed)); err != nil {
		return err
	}
	if err := a.Printer.Success("Success achieved!", tprint.WithStyle(tprint.Bold+tprint.Underline)); err != nil {
		return err
	}
	if err := a.Printer.Critical("System has crashed!", tprint.WithStyle(tprint.BrightRed)); err != nil {
		return err
	}
	return a.Printer.Debug("Debugging trace enabled!", tprint.WithStyle(tprint.Bold))
}

func (a *Application) showcaseInput() error {
	if a.Config.NoInput {
		return nil
	}
	tprint.FSeparator(a.Out, "Interactive input", tprint.Magenta)

	name, err := a.Printer.Input("Enter your name")
	if err != nil {
		return err
	}
	return a.Printer.Info(fmt.Sprintf("Nice to meet you, %s!", name), tprint.WithStyle(tprint.BrightGreen))
}

func (a *Application) showcaseReconfiguration() error {
	tprint.FSeparator(a.Out, "Timestamps and debug toggled off", tprint.Magenta)

	if err := a.Printer.Update(tprint.WithTimestamps(false), tprint.WithDebug(false)); err != nil {
		return err
	}
	if err := a.Printer.Info("This message has no timestamp"); err != nil {
		return err
	}
	if err := a.Printer.Debug("This debug message should not appear"); err != nil {
		return err
	}

	tprint.FSeparator(a.Out, "Log file detached", tprint.Magenta)
	if err := a.Printer.Update(tprint.WithLogFile("")); err != nil {
		return err
	}
	if err := a.Printer.Info("This message won't be logged", tprint.WithLog(false)); err != nil {
		return err
	}

	tprint.FSeparator(a.Out, "Dynamic scheme change", tprint.Magenta)
	if err := a.Printer.Update(tprint.WithColorScheme(tprint.ColorScheme{tprint.LevelInfo: tprint.Cyan})); err != nil {
		return err
	}
	if err := a.Printer.Info("Info color changed to cyan"); err != nil {
		return err
	}

	if a.Config.LogFile != "" {
		tprint.FSeparator(a.Out, "Log file re-attached", tprint.Magenta)
		if err := a.Printer.Update(tprint.WithLogFile(a.Config.LogFile), tprint.WithPurgeOldLogs(false)); err != nil {
			return err
		}
		if err := a.Printer.Info("This message appends to the existing log", tprint.WithLog(true)); err != nil {
			return err
		}
	}

	tprint.FSeparator(a.Out, "Rejected reconfiguration", tprint.Magenta)
	if err := a.Printer.Update(tprint.WithColorScheme(tprint.ColorScheme{"nonexistent_level": tprint.Red})); err != nil {
		if perr := a.Printer.Error(fmt.Sprintf("Caught expected error: %v", err)); perr != nil {
			return perr
		}
	}

	tprint.FSeparator(a.Out, "Mixed styles", tprint.Magenta)
	if err := a.Printer.Success("Styled success", tprint.WithStyle(tprint.Underline+tprint.BrightGreen)); err != nil {
		return err
	}
	if err := a.Printer.Critical("Styled critical", tprint.WithStyle(tprint.Reversed+tprint.BrightRed)); err != nil {
		return err
	}

	tprint.FSeparator(a.Out, "Debug re-enabled", tprint.Magenta)
	if err := a.Printer.Update(tprint.WithDebug(true)); err != nil {
		return err
	}
	return a.Printer.Debug("Debug output is back!")
}

func (a *Application) showcaseLogFile() error {
	if a.Config.LogFile == "" {
		return nil
	}
	tprint.FSeparator(a.Out, "Log file contents", tprint.Magenta)

	data, err := os.ReadFile(a.Config.LogFile)
	if err != nil {
		return err
	}
	dim := color.New(color.FgHiBlack)
	dim.Fprintf(a.Out, "%s", data)
	return nil
}
