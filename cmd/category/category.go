// Package category manages the spending categories of the keyword ruleset.
package category

import (
	"fmt"

	"bankdash/cmd/root"
	"bankdash/internal/categorizer"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	learnCategory  string
	learnNarrative string
)

// Cmd represents the category command
var Cmd = &cobra.Command{
	Use:   "category",
	Short: "Manage spending categories and their keyword rules",
}

var createCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a new spending category",
	Args:  cobra.ExactArgs(1),
	Run:   createFunc,
}

var learnCmd = &cobra.Command{
	Use:   "learn",
	Short: "Record a manual correction as a new keyword rule",
	Long: `Record that a transaction narrative belongs to a category. The
normalized narrative is appended to the category's keywords so future
runs categorize matching transactions automatically. Recording the same
correction twice is harmless.`,
	Run: learnFunc,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and their keyword counts",
	Run:   listFunc,
}

func init() {
	learnCmd.Flags().StringVarP(&learnCategory, "category", "c", "", "Category the transaction belongs to (required)")
	learnCmd.Flags().StringVarP(&learnNarrative, "narrative", "n", "", "Transaction narrative to learn from (required)")

	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(learnCmd)
	Cmd.AddCommand(listCmd)
}

func createFunc(cmd *cobra.Command, args []string) {
	store := root.NewStore()

	created, err := store.CreateCategory(args[0])
	if err != nil {
		root.Log.Fatalf("Error creating category: %v", err)
	}
	if !created {
		root.Log.WithFields(logrus.Fields{
			"category": args[0],
		}).Info("Category already exists")
		return
	}
	fmt.Printf("Created category %q\n", args[0])
}

func learnFunc(cmd *cobra.Command, args []string) {
	if learnCategory == "" || learnNarrative == "" {
		root.Log.Fatal("Both --category and --narrative are required")
	}

	store := root.NewStore()
	learner := categorizer.NewLearner(store)

	added, err := learner.RecordCorrection(learnCategory, learnNarrative)
	if err != nil {
		root.Log.Fatalf("Error recording correction: %v", err)
	}
	if !added {
		root.Log.WithFields(logrus.Fields{
			"category": learnCategory,
		}).Info("Keyword already known, nothing to learn")
		return
	}
	fmt.Printf("Learned %q for category %q\n", categorizer.Normalize(learnNarrative), learnCategory)
}

func listFunc(cmd *cobra.Command, args []string) {
	store := root.NewStore()
	rules := store.Rules()

	for _, name := range rules.Categories() {
		fmt.Printf("%s (%d keywords)\n", name, len(rules.Keywords(name)))
	}
}
