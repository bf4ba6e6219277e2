package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/internal/compiler"
	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/runner"
)

var runCmd = &cobra.Command{
	Use:   "run <definition.yaml>",
	Short: "Run a session definition file",
	Long:  `Loads a YAML session definition, asks its questions interactively, and prints the recorded answers as YAML on completion.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		quiet, _ := cmd.Flags().GetBool("quiet")
		return runSession(cmd, args[0], verbose, quiet)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("quiet", "q", false, "Suppress the answer dump on completion")
}

func runSession(cmd *cobra.Command, path string, verbose, quiet bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read definition: %w", err)
	}

	def, err := compiler.Load(data)
	if err != nil {
		return err
	}
	steps, err := compiler.Build(def)
	if err != nil {
		return err
	}

	logger := logging.FromVerbosity(verbose)
	session, err := parley.New(steps,
		parley.WithName(def.Title),
		parley.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	opts := []runner.Option{runner.WithLogger(logger)}
	if def.Outro != "" {
		opts = append(opts, runner.WithOutro(def.Outro))
	}

	result, err := runner.New(opts...).Run(cmd.Context(), session)
	if err != nil {
		return err
	}

	if result.Status == domain.StatusCancelled {
		// Cancellation is an outcome, not a failure; exit code says so.
		os.Exit(130)
	}

	if !quiet {
		out, err := yaml.Marshal(result.Answers)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	}
	return nil
}
