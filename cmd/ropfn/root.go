package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	jsonFormat = "json"
	yamlFormat = "yaml"
)

type app struct {
	verbose bool
	output  string
	file    string
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "ropfn",
		Short: "Reshape JSON records",
		Long: `ropfn reshapes JSON records: pluck nested fields with a YAML
definition, keep a subset of keys, join fields from a source list or
index a list by key.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVarP(&a.output, "output", "o", jsonFormat, "Output format (json, yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.file, "file", "f", "", "Input JSON file (default stdin)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newPluckCmd(a),
		newExtractCmd(a),
		newEnrichCmd(a),
		newIndexCmd(a),
	)
	return rootCmd
}

func (a *app) setup() error {
	switch a.output {
	case jsonFormat, yamlFormat:
	default:
		return fmt.Errorf("unsupported output format %q", a.output)
	}

	if !a.verbose {
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.logger = logger
	return nil
}
