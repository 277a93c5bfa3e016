package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"winnow/internal/config"
	"winnow/internal/logging"
	"winnow/internal/report"
	"winnow/internal/resolve"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [report.json]",
		Short: "Interactively resolve duplicates from a scan report",
		Long: `Walk the duplicate groups of a scan report, choose which copy of each
file to keep, and delete the rest after per-file confirmation.

Without an argument the newest duplicate report in the configured output
directory is used. TV groups come first, ordered by show, season, and
episode; movie groups follow with members listed largest first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			reportPath, err := resolveReportPath(cfg, args)
			if err != nil {
				return err
			}
			rpt, err := report.Load(reportPath)
			if err != nil {
				return fmt.Errorf("load report %s: %w", reportPath, err)
			}

			if !stdinIsTerminal() {
				return errors.New("resolve needs an interactive terminal; run it without piping stdin")
			}
			if !shouldColorize(os.Stdout) {
				pterm.DisableColor()
			}

			logger, logPath, err := resolveLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Resolving %s (scanned %s)\n\n", reportPath, rpt.ScanTimestamp)
			printDistribution(out, rpt)

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			session := resolve.NewSession(resolve.Options{
				Report:   rpt,
				Output:   out,
				LockPath: filepath.Join(cfg.Paths.OutputDir, lockFileName),
			}, logger)
			if _, err := session.Run(signalCtx); err != nil {
				return err
			}
			if logPath != "" {
				fmt.Fprintf(out, "Log: %s\n", logPath)
			}
			return nil
		},
	}

	return cmd
}

// resolveLogger logs to a file only. Console log lines would interleave
// with the interactive prompts.
func resolveLogger(cfg *config.Config) (*slog.Logger, string, error) {
	logPath := filepath.Join(cfg.Paths.LogDir, fmt.Sprintf("resolve_%s.log", time.Now().UTC().Format("20060102_150405")))
	logger, err := logging.New(logging.Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: []string{logPath},
	})
	if err != nil {
		return nil, "", err
	}
	return logger, logPath, nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
