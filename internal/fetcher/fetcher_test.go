package fetcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownload_RequiresBucketAndObject(t *testing.T) {
	f := New()
	ctx := context.Background()
	dir := t.TempDir()

	_, err := f.Download(ctx, "", "export.csv", dir)
	assert.Error(t, err)

	_, err = f.Download(ctx, "bankstatements", "", dir)
	assert.Error(t, err)
}

func TestDownload_CancelledContext(t *testing.T) {
	f := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Download(ctx, "bankstatements", "export.csv", t.TempDir())
	assert.Error(t, err)
}
