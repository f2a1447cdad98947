package main

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Version information, set at build time.
	Version   = "dev"
	GitCommit = "unknown"
)

// app holds state shared by every command.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func (a *app) setup(*cobra.Command, []string) error {
	if !a.verbose {
		a.logger = zap.NewNop()
		return nil
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	a.logger = logger

	return nil
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "beaninspect",
		Short: "Inspect bean types and copy profiles",
		Long: color.CyanString(`beaninspect - static bean inspection

Resolves generic type parameters through embedding chains, prints the
properties a bean registry would see, and validates YAML copy profiles.`),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable development logging")

	rootCmd.AddCommand(newDescribeCommand(a))
	rootCmd.AddCommand(newProfileCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			title := color.New(color.FgCyan, color.Bold)
			out := cmd.OutOrStdout()

			title.Fprint(out, "beaninspect version: ")
			fmt.Fprintln(out, Version)
			title.Fprint(out, "Git commit: ")
			fmt.Fprintln(out, GitCommit)
			title.Fprint(out, "Go version: ")
			fmt.Fprintln(out, runtime.Version())
		},
	}
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}

	return nil
}
