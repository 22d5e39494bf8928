package wordreference

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
)

// PageCache keeps downloaded definition pages on disk, one file per word.
type PageCache struct {
	rootDir string
}

func NewPageCache(cacheDirectory string) *PageCache {
	return &PageCache{
		rootDir: cacheDirectory,
	}
}

func (cache *PageCache) filePath(word string) string {
	return filepath.Join(cache.rootDir, url.PathEscape(word)+".html")
}

// fetch returns the cached page of word, or calls download and caches its result.
// A failure to write the cache is logged and does not discard the downloaded page.
func (cache *PageCache) fetch(word string, download func() ([]byte, error)) ([]byte, error) {
	contents, err := os.ReadFile(cache.filePath(word))
	if err == nil {
		slog.Default().Debug("page cache hit", "word", word)
		return contents, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", cache.filePath(word), err)
	}

	contents, err = download()
	if err != nil {
		return nil, err
	}

	if err := cache.write(word, contents); err != nil {
		slog.Default().Warn("failed to cache page", "word", word, "error", err)
	}
	return contents, nil
}

func (cache *PageCache) write(word string, contents []byte) error {
	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", cache.rootDir, err)
	}
	if err := os.WriteFile(cache.filePath(word), contents, 0644); err != nil {
		return fmt.Errorf("os.WriteFile > %w", err)
	}
	return nil
}
