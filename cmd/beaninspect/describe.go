package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"beanmapper/internal/analyze"
	"beanmapper/internal/common"
	"beanmapper/internal/diagnostic"
)

func newDescribeCommand(a *app) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "describe <package> <Type>",
		Short: "Print the resolved fields of a struct type",
		Example: `  beaninspect describe beanmapper/store Order
  beaninspect describe ./warehouse Parcel`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.describe(cmd.OutOrStdout(), dir, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", "", "directory the package pattern is resolved in")

	return cmd
}

func (a *app) describe(w io.Writer, dir, pattern, typeName string) error {
	a.logger.Debug("loading packages", zap.String("pattern", pattern), zap.String("dir", dir))

	an := analyze.NewAnalyzer()
	an.Dir = dir

	graph, err := an.LoadPackages(pattern)
	if err != nil {
		return err
	}

	pkgPath := resolvePackage(graph, pattern)
	a.logger.Debug("packages loaded", zap.Int("packages", len(graph.Packages)), zap.String("package", pkgPath))

	desc, err := graph.Describe(pkgPath, typeName)
	if err != nil {
		return err
	}

	printDescription(w, desc)

	return nil
}

// resolvePackage maps a pattern such as "./store" to its import path.
func resolvePackage(graph *analyze.TypeGraph, pattern string) string {
	if _, ok := graph.Packages[pattern]; ok || len(graph.Packages) != 1 {
		return pattern
	}

	for path := range graph.Packages {
		return path
	}

	return pattern
}

func printDescription(w io.Writer, desc *analyze.Description) {
	title := color.New(color.FgCyan, color.Bold)
	dim := color.New(color.Faint)
	warn := color.New(color.FgYellow)

	title.Fprintf(w, "%s.%s", common.PkgAlias(desc.ID.PkgPath), desc.ID.Name)
	dim.Fprintf(w, " (%s)\n", desc.ID.PkgPath)

	binding := "none"
	if !desc.Binding.IsEmpty() {
		binding = desc.Binding.String()
	}
	fmt.Fprintf(w, "binding: %s\n", binding)

	for _, m := range desc.Members {
		resolved := "unresolved"
		if m.Resolved != nil {
			resolved = m.Resolved.String()
		}

		line := fmt.Sprintf("  %-40s %s", m.Path, resolved)
		switch {
		case m.Resolved == nil:
			warn.Fprintln(w, line)
		case !m.Exported || m.Embedded:
			dim.Fprintln(w, line)
		default:
			fmt.Fprintln(w, line)
		}
	}

	printDiagnostics(w, &desc.Diagnostics)
}

func printDiagnostics(w io.Writer, diags *diagnostic.Diagnostics) {
	styles := map[diagnostic.DiagnosticSeverity]*color.Color{
		diagnostic.DiagnosticError:   color.New(color.FgRed, color.Bold),
		diagnostic.DiagnosticWarning: color.New(color.FgYellow),
		diagnostic.DiagnosticInfo:    color.New(color.Faint),
	}

	all := diags.All()
	slices.SortStableFunc(all, func(x, y diagnostic.Diagnostic) int { return int(y.Severity) - int(x.Severity) })

	for _, d := range all {
		styles[d.Severity].Fprintf(w, "%s: %s\n", d.Severity, d.String())
	}
}
