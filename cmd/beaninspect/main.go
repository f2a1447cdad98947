// Package main provides the beaninspect CLI.
//
// beaninspect inspects bean types statically and validates copy profiles:
//   - describe loads a package and prints the binding and resolved field
//     types of one struct, warning on unbound type parameters
//   - profile validate checks a YAML profile file
//   - version prints build information
package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
