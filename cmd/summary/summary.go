// Package summary reports per-category totals for a transaction export.
package summary

import (
	"fmt"
	"os"
	"text/tabwriter"

	"bankdash/cmd/fetch"
	"bankdash/cmd/root"
	"bankdash/internal/bankparser"
	"bankdash/internal/categorizer"
	"bankdash/internal/fetcher"
	"bankdash/internal/report"

	"github.com/spf13/cobra"
)

var (
	inputFile string
	credits   bool
	skipZero  bool
)

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Categorize an export and print per-category totals",
	Long: `Load a transaction export, categorize it with the keyword ruleset,
and print per-category totals sorted largest first. Without --input the
export is downloaded from the configured storage bucket first; if that
download fails there is no data to summarize and the command reports
nothing.`,
	Run: summaryFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input export CSV file (downloads from storage when omitted)")
	Cmd.Flags().BoolVarP(&credits, "credits", "c", false, "Sum credit amounts instead of debits")
	Cmd.Flags().BoolVarP(&skipZero, "skip-zero", "z", false, "Drop zero-total categories from the output")
}

func summaryFunc(cmd *cobra.Command, args []string) {
	path := inputFile
	if path == "" {
		bucket := root.Cfg.Storage.Bucket
		object := root.Cfg.Storage.Object
		if bucket == "" || object == "" {
			root.Log.Fatal("An input file is required when no storage bucket is configured")
		}

		f := fetcher.New(fetch.ClientOptions()...)
		downloaded, err := f.Download(cmd.Context(), bucket, object, root.Cfg.Storage.DownloadDir)
		if err != nil {
			// No data available means nothing to categorize.
			root.Log.WithError(err).Warn("Export download failed, no data to summarize")
			return
		}
		path = downloaded
	}

	transactions, err := bankparser.ParseFile(path)
	if err != nil {
		root.Log.Fatalf("Error loading export: %v", err)
	}
	if len(transactions) == 0 {
		root.Log.Warn("Export contains no transactions, nothing to summarize")
		return
	}

	store := root.NewStore()
	transactions = categorizer.Categorize(transactions, store.Rules())

	opts := report.Options{SkipZeroTotals: skipZero || root.Cfg.Report.SkipZeroTotals}
	var totals []report.CategoryTotal
	if credits {
		totals = report.SummarizeCredits(transactions, opts)
	} else {
		totals = report.Summarize(transactions, opts)
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "CATEGORY\tTOTAL")
	for _, total := range totals {
		fmt.Fprintf(writer, "%s\t%s\n", total.Category, total.Total.StringFixed(2))
	}
	if err := writer.Flush(); err != nil {
		root.Log.Warnf("Failed to flush output: %v", err)
	}
}
