package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/parley/internal/compiler"
	"github.com/aretw0/parley/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate <definition.yaml>",
	Short: "Check a session definition for consistency",
	Long:  `Parses the definition and reports unknown prompt types, duplicate ids, malformed rules, branch targets that don't exist and unreachable steps, without running the session.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Definition is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	def, err := compiler.Load(data)
	if err != nil {
		return err
	}

	// Build exercises the per-type option payloads too.
	if _, err := compiler.Build(def); err != nil {
		return err
	}

	return validator.ValidateFlow(def)
}
