// Package cli implements the bluecheck command line: single checks from
// positional arguments, batch runs from a YAML or JSON file and the kinds
// listing. Settings come from the environment (see Config) and can be
// overridden by flags.
package cli
