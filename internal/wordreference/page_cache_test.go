package wordreference

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageCache_filePath(t *testing.T) {
	tests := []struct {
		name     string
		rootDir  string
		word     string
		expected string
	}{
		{
			name:     "simple word",
			rootDir:  "pages",
			word:     "casa",
			expected: filepath.Join("pages", "casa.html"),
		},
		{
			name:     "word with spaces",
			rootDir:  "pages",
			word:     "año nuevo",
			expected: filepath.Join("pages", "a%C3%B1o%20nuevo.html"),
		},
		{
			name:     "word with a slash stays inside the cache directory",
			rootDir:  "pages",
			word:     "../y/o",
			expected: filepath.Join("pages", "..%2Fy%2Fo.html"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := NewPageCache(tt.rootDir)
			assert.Equal(t, tt.expected, cache.filePath(tt.word))
		})
	}
}

func TestPageCache_fetch(t *testing.T) {
	tests := []struct {
		name           string
		word           string
		setupCache     bool
		cacheContent   string
		download       func() ([]byte, error)
		expectedResult string
		expectError    bool
		expectCached   bool
	}{
		{
			name: "cache miss - successful download",
			word: "casa",
			download: func() ([]byte, error) {
				return []byte("<html>casa</html>"), nil
			},
			expectedResult: "<html>casa</html>",
			expectCached:   true,
		},
		{
			name:         "cache hit",
			word:         "perro",
			setupCache:   true,
			cacheContent: "<html>cached</html>",
			download: func() ([]byte, error) {
				return []byte("<html>downloaded</html>"), nil
			},
			expectedResult: "<html>cached</html>",
			expectCached:   true,
		},
		{
			name: "cache miss - download error",
			word: "gato",
			download: func() ([]byte, error) {
				return nil, errors.New("connection refused")
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The cache directory is created on the first write.
			cache := NewPageCache(filepath.Join(t.TempDir(), "pages"))

			if tt.setupCache {
				require.NoError(t, os.MkdirAll(cache.rootDir, 0755))
				require.NoError(t, os.WriteFile(cache.filePath(tt.word), []byte(tt.cacheContent), 0644))
			}

			result, err := cache.fetch(tt.word, tt.download)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedResult, string(result))
			}

			_, statErr := os.Stat(cache.filePath(tt.word))
			assert.Equal(t, tt.expectCached, statErr == nil)
		})
	}
}
