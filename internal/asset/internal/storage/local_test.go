package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalUploader_Upload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	up := NewLocalUploader(dir, "/uploads")

	url, err := up.Upload(context.Background(), "a-x.png", "image/png", []byte("data"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/a-x.png", url)

	content, err := os.ReadFile(filepath.Join(dir, "a-x.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), content)
}
