// Package testutil provides shared test helpers for creating config files and scraping fixtures.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file whose store, word list and page cache live under tmpDir
// and whose definition pages are requested from baseURL.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	configContent := fmt.Sprintf(`store:
  path: %s
batch:
  word_list: %s
source:
  base_url: %s
  headers:
    user-agent: wordharvest-test
`,
		filepath.Join(tmpDir, "dictionary.json"),
		filepath.Join(tmpDir, "words.txt"),
		baseURL,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WriteWordList writes words one per line to words.txt under tmpDir and returns its path.
func WriteWordList(t *testing.T, tmpDir string, words ...string) string {
	t.Helper()

	path := filepath.Join(tmpDir, "words.txt")
	var contents string
	if len(words) > 0 {
		contents = strings.Join(words, "\n") + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

// DefinitionPage renders a page with the given definitions in the layout WordReference uses.
func DefinitionPage(definitions ...string) string {
	var items strings.Builder
	for _, definition := range definitions {
		items.WriteString("<li>" + definition + "</li>")
	}
	return `<html><body><div id="otherDicts"><div class="trans esp"><ol>` +
		items.String() +
		`</ol></div></div></body></html>`
}

// DefinitionServer serves definition pages for the words in pages.
// Unknown words get a page without definitions. Requested words are recorded in order.
type DefinitionServer struct {
	*httptest.Server

	mu        sync.Mutex
	requested []string
}

// NewDefinitionServer starts a DefinitionServer that is closed when the test ends.
func NewDefinitionServer(t *testing.T, pages map[string][]string) *DefinitionServer {
	t.Helper()

	s := &DefinitionServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		word := filepath.Base(r.URL.Path)
		s.mu.Lock()
		s.requested = append(s.requested, word)
		s.mu.Unlock()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(DefinitionPage(pages[word]...)))
	}))
	t.Cleanup(s.Close)
	return s
}

// Requested returns the words requested so far.
func (s *DefinitionServer) Requested() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.requested...)
}
