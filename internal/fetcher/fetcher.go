// Package fetcher downloads transaction exports from object storage to
// local files.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bankdash/internal/config"
	"bankdash/internal/models"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Fetcher retrieves export blobs from a storage bucket.
type Fetcher struct {
	opts []option.ClientOption
}

// New creates a Fetcher. Client options such as a credentials file are
// passed through to the storage client.
func New(opts ...option.ClientOption) *Fetcher {
	return &Fetcher{opts: opts}
}

// Download streams bucket/object into destDir and returns the local
// file path. Any connectivity or authorization failure comes back as an
// error; callers treat it as no data being available and perform no
// categorization.
func (f *Fetcher) Download(ctx context.Context, bucket, object, destDir string) (string, error) {
	if bucket == "" || object == "" {
		return "", fmt.Errorf("bucket and object are required")
	}

	client, err := storage.NewClient(ctx, f.opts...)
	if err != nil {
		return "", fmt.Errorf("creating storage client: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.WithError(err).Warn("Failed to close storage client")
		}
	}()

	reader, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return "", fmt.Errorf("opening object %s/%s: %w", bucket, object, err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			log.WithError(err).Warn("Failed to close object reader")
		}
	}()

	if err := os.MkdirAll(destDir, models.PermissionDirectory); err != nil {
		return "", fmt.Errorf("creating download directory: %w", err)
	}

	destPath := filepath.Join(destDir, filepath.Base(object))
	file, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("creating local file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	written, err := io.Copy(file, reader)
	if err != nil {
		return "", fmt.Errorf("downloading object %s/%s: %w", bucket, object, err)
	}

	log.WithFields(logrus.Fields{
		"bucket": bucket,
		"object": object,
		"file":   destPath,
		"bytes":  written,
	}).Info("Downloaded export")
	return destPath, nil
}
