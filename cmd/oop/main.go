package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sghaida/oop/internal/config"
	"github.com/sghaida/oop/internal/demo"
	"github.com/sghaida/oop/internal/logger"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(demo.Default(), stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func newRootCmd(reg *demo.Registry, stdout, stderr io.Writer) *cobra.Command {
	var (
		configPath string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:           "oop",
		Short:         "Run value-object demonstrations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML file with demo inputs")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	newLogger := func() *slog.Logger {
		return logger.Setup(logger.Config{Debug: debug, Writer: stderr})
	}

	cmd.AddCommand(
		listCmd(reg, stdout),
		runCmd(reg, stdout, &configPath, newLogger),
		versionCmd(stdout),
	)

	return cmd
}

func listCmd(reg *demo.Registry, stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available demos",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, name := range reg.Names() {
				if _, err := fmt.Fprintln(stdout, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func runCmd(reg *demo.Registry, stdout io.Writer, configPath *string, newLogger func() *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "run [demo...]",
		Short: "Run demos (all when none are named)",
		RunE: func(_ *cobra.Command, names []string) error {
			log := logger.WithRunID(newLogger())

			in, err := config.Load(*configPath)
			if err != nil {
				log.Error("config.load", "path", *configPath, "err", err)
				return err
			}
			in = config.LoadFromEnv(in)
			log.Debug("config.loaded", "path", *configPath, "inputs", in)

			if len(names) == 0 {
				names = reg.Names()
			}
			log.Info("run.start", "demos", names, "config", *configPath)

			if err := reg.RunAll(stdout, in, names...); err != nil {
				log.Error("run.failed", "err", err)
				return err
			}

			log.Info("run.done", "count", len(names))
			return nil
		},
	}
}

func versionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(stdout, "oop %s\n", Version)
			return err
		},
	}
}
