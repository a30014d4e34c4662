// Package categorize handles transaction categorization commands
package categorize

import (
	"fmt"

	"bankdash/cmd/root"
	"bankdash/internal/bankparser"
	"bankdash/internal/categorizer"
	"bankdash/internal/models"

	"github.com/spf13/cobra"
)

var (
	inputFile  string
	outputFile string
	narrative  string
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a transaction export using the keyword ruleset",
	Long: `Categorize every transaction in an export by exact keyword match
against the ruleset, or test a single narrative with --narrative.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input export CSV file")
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file for categorized transactions (optional)")
	Cmd.Flags().StringVarP(&narrative, "narrative", "n", "", "Categorize a single narrative instead of a file")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	store := root.NewStore()

	if narrative != "" {
		labeled := categorizer.Categorize([]models.Transaction{{Narrative: narrative}}, store.Rules())
		root.Log.Infof("Narrative %q categorized as: %s", narrative, labeled[0].Category)
		return
	}

	if inputFile == "" {
		root.Log.Fatal("An input file or a narrative is required")
	}

	transactions, err := bankparser.ParseFile(inputFile)
	if err != nil {
		root.Log.Fatalf("Error loading export: %v", err)
	}

	transactions = categorizer.Categorize(transactions, store.Rules())

	counts := make(map[string]int)
	for _, tx := range transactions {
		counts[tx.Category]++
	}
	for _, name := range store.Rules().Categories() {
		if count, ok := counts[name]; ok {
			fmt.Printf("%-24s %d\n", name, count)
		}
	}

	if outputFile != "" {
		if err := bankparser.WriteFile(transactions, outputFile); err != nil {
			root.Log.Fatalf("Error writing categorized export: %v", err)
		}
		root.Log.Infof("Wrote categorized export to %s", outputFile)
	}
}
