// Command-line interface for the GTFS validator library
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/customrules"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/daemon"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/internal/engine"
	"github.com/theoremus-urban-solutions/transit-feed-auditor/logging"
)

const version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI tree described by spec.md §6. With -i/--input
// supplied it runs the core once and prints a Response; with it omitted the
// daemon runs instead ("when omitted, the core is not invoked and the
// daemon runs").
func newRootCmd() *cobra.Command {
	var (
		input        string
		maxIssues    int
		outputFormat string
		customRules  string
	)

	cmd := &cobra.Command{
		Use:     "gtfs-validator",
		Short:   "Validate a GTFS feed and print a structured issue report",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetGlobalLogger()

			rules := customrules.Default()
			if customRules != "" {
				loaded, err := customrules.Load(customRules)
				if err != nil {
					return fmt.Errorf("loading custom rules: %w", err)
				}
				rules = loaded
			}

			if input == "" {
				logger.Info("no --input supplied, starting daemon")
				return daemon.RunWithRules(rules)
			}

			logger.Info("validating feed", logging.String("input", input), logging.Int("max_issues", maxIssues))
			resp := engine.Validate(input, maxIssues, rules)
			return writeResponse(cmd.OutOrStdout(), resp, outputFormat)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "GTFS feed path or URL; omit to start the HTTP daemon")
	cmd.Flags().IntVarP(&maxIssues, "max-issues", "m", 1000, "maximum issues recorded per issue type")
	cmd.Flags().StringVarP(&outputFormat, "output-format", "f", "json", "output format: json, yaml, or pretty-json")
	cmd.Flags().StringVarP(&customRules, "custom-rules", "c", "", "path to a YAML custom-rules file")

	return cmd
}

// writeResponse serializes resp per spec.md §6 "Persisted formats" and
// writes it to w. Exit codes are the caller's concern: a non-nil error here
// means serialization failed, the only CLI failure mode besides I/O.
func writeResponse(w io.Writer, resp interface{}, format string) error {
	var out []byte
	var err error

	switch format {
	case "yaml":
		out, err = yaml.Marshal(resp)
	case "pretty-json":
		out, err = json.MarshalIndent(resp, "", "  ")
	case "json", "":
		out, err = json.Marshal(resp)
	default:
		return fmt.Errorf("unrecognized output format %q", format)
	}
	if err != nil {
		return fmt.Errorf("serializing response: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
