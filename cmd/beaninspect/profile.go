package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"beanmapper/profile"
)

func newProfileCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Work with YAML copy profiles",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "validate <file.yaml>",
		Short: "Validate a profile file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validateProfile(cmd.OutOrStdout(), args[0])
		},
	})

	return cmd
}

func (a *app) validateProfile(w io.Writer, path string) error {
	f, err := profile.LoadFile(path)
	if err != nil {
		return err
	}
	a.logger.Debug("profile file loaded", zap.String("path", path), zap.Strings("profiles", f.Names()))

	diags := profile.Validate(f)
	printDiagnostics(w, diags)

	if err := diags.Error(); err != nil {
		return fmt.Errorf("%s: %d error(s)", path, len(diags.Errors))
	}

	color.New(color.FgGreen).Fprintf(w, "%s: %d profile(s) valid\n", path, len(f.Profiles))

	return nil
}
