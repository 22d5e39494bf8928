package dictionary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/google/renameio/v2"
)

//go:generate mockgen -source=store.go -destination=../mocks/dictionary/mock_definition_source.go -package=mock_dictionary DefinitionSource

// DefinitionSource returns the definitions of a word.
// An empty result means either that the word has no definitions or that they
// could not be obtained; callers cannot tell the two apart.
type DefinitionSource interface {
	Definitions(ctx context.Context, word string) []string
}

// Store persists a Dictionary as a single JSON file.
// Every write replaces the whole file.
type Store struct {
	path   string
	writer io.Writer
}

// NewStore returns a Store bound to path and creates an empty dictionary file
// there if none exists yet. Merge results are reported to writer.
func NewStore(path string, writer io.Writer) (*Store, error) {
	store := &Store{
		path:   path,
		writer: writer,
	}

	if _, err := os.Stat(path); err == nil {
		return store, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("os.Stat(%s) > %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll(%s) > %w", filepath.Dir(path), err)
	}
	if err := store.Persist(Dictionary{}); err != nil {
		return nil, fmt.Errorf("store.Persist > %w", err)
	}
	return store, nil
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads the whole dictionary. A missing file is an empty dictionary.
func (s *Store) Load() (Dictionary, error) {
	contents, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Dictionary{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", s.path, err)
	}

	var dict Dictionary
	if err := json.Unmarshal(contents, &dict); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", s.path, err)
	}
	if dict == nil {
		dict = Dictionary{}
	}
	return dict, nil
}

// Merge merges definitions of word into dict and reports the outcome.
func (s *Store) Merge(dict Dictionary, word string, definitions []string) Dictionary {
	status := dict.Merge(word, definitions)
	slog.Default().Debug("merged definitions",
		"word", word,
		"status", status.String(),
		"definitions", len(definitions),
		"total", len(dict[word].Means))

	switch status {
	case MergeInserted:
		_, _ = color.New(color.FgGreen).Fprintf(s.writer, "Added word %q\n", word)
	case MergeAppended:
		_, _ = color.New(color.FgCyan).Fprintf(s.writer, "Added new definitions to %q\n", word)
	case MergeUnchanged:
		_, _ = color.New(color.FgYellow).Fprintf(s.writer, "No new definitions for %q\n", word)
	}
	return dict
}

// Persist writes dict to the store file, replacing its previous contents.
// The file is replaced atomically, so readers never observe a partial write.
func (s *Store) Persist(dict Dictionary) error {
	var buf bytes.Buffer
	if err := Encode(&buf, dict); err != nil {
		return err
	}

	if err := renameio.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("renameio.WriteFile(%s) > %w", s.path, err)
	}
	return nil
}

// FetchAndSave looks up word in source and merges the result into the store.
// Nothing is written when the source returns no definitions.
func (s *Store) FetchAndSave(ctx context.Context, source DefinitionSource, word string) error {
	dict, err := s.Load()
	if err != nil {
		return fmt.Errorf("s.Load > %w", err)
	}

	definitions := source.Definitions(ctx, word)
	if len(definitions) == 0 {
		slog.Default().Debug("no definitions found", "word", word)
		return nil
	}

	dict = s.Merge(dict, word, definitions)
	if err := s.Persist(dict); err != nil {
		return fmt.Errorf("s.Persist > %w", err)
	}
	return nil
}

// Encode writes dict as indented JSON with non-ASCII and HTML characters kept literal.
// Words are written in lexical order.
func Encode(w io.Writer, dict Dictionary) error {
	if dict == nil {
		dict = Dictionary{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(dict); err != nil {
		return fmt.Errorf("encoder.Encode > %w", err)
	}
	return nil
}
