// Package fetch downloads a transaction export from object storage.
package fetch

import (
	"bankdash/cmd/root"
	"bankdash/internal/fetcher"

	"github.com/spf13/cobra"
	"google.golang.org/api/option"
)

var (
	bucket  string
	object  string
	destDir string
)

// Cmd represents the fetch command
var Cmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a transaction export from object storage",
	Long: `Download a transaction export blob to a local file so it can be
categorized and summarized. Bucket and object default to the storage
section of the configuration.`,
	Run: fetchFunc,
}

func init() {
	Cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Storage bucket (defaults to storage.bucket from config)")
	Cmd.Flags().StringVarP(&object, "object", "n", "", "Object name (defaults to storage.object from config)")
	Cmd.Flags().StringVarP(&destDir, "dest", "d", "", "Download directory (defaults to storage.download_dir from config)")
}

// ClientOptions builds the storage client options from configuration.
func ClientOptions() []option.ClientOption {
	var opts []option.ClientOption
	if root.Cfg != nil && root.Cfg.Storage.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(root.Cfg.Storage.CredentialsFile))
	}
	return opts
}

func fetchFunc(cmd *cobra.Command, args []string) {
	if bucket == "" {
		bucket = root.Cfg.Storage.Bucket
	}
	if object == "" {
		object = root.Cfg.Storage.Object
	}
	if destDir == "" {
		destDir = root.Cfg.Storage.DownloadDir
	}

	if bucket == "" || object == "" {
		root.Log.Fatal("Bucket and object are required (flags or storage config)")
	}

	f := fetcher.New(ClientOptions()...)
	path, err := f.Download(cmd.Context(), bucket, object, destDir)
	if err != nil {
		root.Log.Fatalf("Error downloading export: %v", err)
	}

	root.Log.Infof("Downloaded export to %s", path)
}
