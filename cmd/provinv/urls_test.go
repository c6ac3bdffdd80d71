package main_test

import (
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/provinv/cmd/provinv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadURLs(t *testing.T) {
	t.Parallel()

	t.Run("preserves input order and skips blank lines", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "urls.txt")
		content := "https://example.com/providers/a\n\n  https://example.com/providers/b  \n\nhttps://example.com/providers/c\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		urls, err := main.ReadURLs(path)

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/providers/a",
			"https://example.com/providers/b",
			"https://example.com/providers/c",
		}, urls)
	})

	t.Run("empty file yields no URLs", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "urls.txt")
		require.NoError(t, os.WriteFile(path, []byte("\n\n  \n"), 0o644))

		urls, err := main.ReadURLs(path)

		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("missing file returns an error naming the path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nope.txt")

		urls, err := main.ReadURLs(path)

		require.Error(t, err)
		assert.Nil(t, urls)
		assert.Contains(t, err.Error(), path)
	})
}
