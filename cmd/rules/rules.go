// Package rules exports and imports the keyword ruleset as YAML.
package rules

import (
	"fmt"

	"bankdash/cmd/root"

	"github.com/spf13/cobra"
)

var (
	exportFile string
	importFile string
)

// Cmd represents the rules command
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "Export or import the keyword ruleset as YAML",
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the ruleset to a YAML file for editing",
	Run:   exportFunc,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the ruleset from a YAML file",
	Run:   importFunc,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "output", "o", "", "Output YAML file (required)")
	importCmd.Flags().StringVarP(&importFile, "input", "i", "", "Input YAML file (required)")

	Cmd.AddCommand(exportCmd)
	Cmd.AddCommand(importCmd)
}

func exportFunc(cmd *cobra.Command, args []string) {
	if exportFile == "" {
		root.Log.Fatal("An output file is required, use --output")
	}

	store := root.NewStore()
	if err := store.ExportYAML(exportFile); err != nil {
		root.Log.Fatalf("Error exporting ruleset: %v", err)
	}
	fmt.Printf("Exported %d categories to %s\n", store.Rules().Len(), exportFile)
}

func importFunc(cmd *cobra.Command, args []string) {
	if importFile == "" {
		root.Log.Fatal("An input file is required, use --input")
	}

	store := root.NewStore()
	if err := store.ImportYAML(importFile); err != nil {
		root.Log.Fatalf("Error importing ruleset: %v", err)
	}
	fmt.Printf("Imported %d categories from %s\n", store.Rules().Len(), importFile)
}
