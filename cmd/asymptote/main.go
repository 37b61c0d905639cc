// SPDX-License-Identifier: Apache-2.0
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"asymptote/internal/ast"
	"asymptote/internal/bench"
	"asymptote/internal/parser"
	"asymptote/internal/recurrence"
	"asymptote/internal/stdlib"
	"asymptote/internal/symbols"
	"asymptote/internal/vcgen"
)

// verbose is bound once on the root command via PersistentFlags, so
// every subcommand (and the internal/verifier logging it flows into)
// sees the same flag rather than each registering its own.
var verbose bool

func main() {
	root := &cobra.Command{
		Use:   "asymptote",
		Short: "Static verifier for asymptotic cost claims",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "print per-function path-length statistics and raise logging to debug level")

	root.AddCommand(parseCmd(), recurrencesCmd(), analyzeCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Echo the parsed AST",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := parseFile(args[0])
			if err != nil {
				return err
			}
			for _, def := range prog.Defs {
				fmt.Println(def.String())
			}
			return nil
		},
	}
}

func recurrencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recurrences <file>",
		Short: "Echo the generated paths for every function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := parseFile(args[0])
			if err != nil {
				return err
			}

			counter := symbols.NewCounter()
			defs := recurrence.NewDefs()
			if err := stdlib.Populate(defs, counter); err != nil {
				return err
			}
			tests, err := vcgen.Generate(prog, defs, counter)
			if err != nil {
				return err
			}
			for _, test := range tests {
				fmt.Printf("%s: %d path(s)\n", test.Name, len(test.Paths))
				for i, path := range test.Paths {
					fmt.Printf("  path %d: %d call(s)\n", i, len(path))
					for _, call := range path {
						fmt.Printf("    -> %s\n", call.Callee)
					}
				}
			}
			return nil
		},
	}
}

func analyzeCmd() *cobra.Command {
	var all bool
	var output string

	cmd := &cobra.Command{
		Use:   "analyze [<file>|<dir>]",
		Short: "Verify every function's cost claim, or batch-benchmark a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "examples"
			if len(args) == 1 {
				target = args[0]
			}

			if all {
				reports, err := bench.AnalyzeDir(target)
				if err != nil {
					return err
				}
				blob, err := json.MarshalIndent(reports, "", "  ")
				if err != nil {
					return err
				}
				if output != "" {
					if err := os.WriteFile(output, blob, 0o644); err != nil {
						return err
					}
					fmt.Printf("wrote %s\n", output)
				} else {
					fmt.Println(string(blob))
				}
				for _, r := range reports {
					printFileSummary(r, verbose)
				}
				return nil
			}

			return analyzeSingleFile(target, verbose)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "batch-benchmark every *.ml file under the target directory")
	cmd.Flags().StringVar(&output, "output", "", "write the JSON report to this path instead of stdout")
	return cmd
}

func analyzeSingleFile(path string, verbose bool) error {
	report := bench.AnalyzeFile(path)
	if report.Err != "" {
		return fmt.Errorf("%s", report.Err)
	}
	printFileSummary(report, verbose)
	return nil
}

func printFileSummary(r bench.FileReport, verbose bool) {
	fmt.Printf("%s (%d function(s), parsed in %.4fs)\n", r.File, r.NumFunctions, r.ParseTime)
	for _, f := range r.Functions {
		status := color.GreenString("accepted")
		if !f.Accepted {
			status = color.RedString("rejected")
		}
		fmt.Printf("  %-20s %s (%d path(s))\n", f.Name, status, f.NumPaths)
		if verbose {
			fmt.Printf("    max/min/avg path length: %d/%d/%.2f, total calls: %d\n",
				f.MaxPathLength, f.MinPathLength, f.AvgPathLength, f.TotalCalls)
		}
	}
}

func parseFile(path string) (*ast.Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parser.ParseSource(path, string(source))
}
