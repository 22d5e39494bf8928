// Package harvest runs dictionary lookups over a word list, one word at a time.
package harvest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wordharvest/internal/dictionary"
)

var (
	ErrWordListNotFound  = errors.New("word list not found")
	ErrStartWordNotFound = errors.New("start word not found in the word list")
)

// Runner fetches the definitions of every word of a list and merges them into a store.
type Runner struct {
	store  *dictionary.Store
	source dictionary.DefinitionSource
	writer io.Writer
	// flushEvery is the number of merged words kept in memory before the store is written.
	// With 1, every word is a full load, merge and write of the store file.
	flushEvery int
}

func NewRunner(store *dictionary.Store, source dictionary.DefinitionSource, writer io.Writer, flushEvery int) *Runner {
	if flushEvery < 1 {
		flushEvery = 1
	}
	return &Runner{
		store:      store,
		source:     source,
		writer:     writer,
		flushEvery: flushEvery,
	}
}

// ReadWords returns the non-empty lines of the file at path.
// Blank lines are skipped rather than looked up as an empty word.
func ReadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrWordListNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSuffix(scanner.Text(), "\r")
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanner.Scan(%s) > %w", path, err)
	}
	return words, nil
}

// Run processes the words of wordListPath in order, starting at startWord when
// it is not empty. Input errors are reported before any word is processed.
func (r *Runner) Run(ctx context.Context, wordListPath, startWord string) error {
	words, err := ReadWords(wordListPath)
	if err != nil {
		if errors.Is(err, ErrWordListNotFound) {
			_, _ = color.New(color.FgRed).Fprintf(r.writer, "The file %q does not exist.\n", wordListPath)
		}
		return err
	}

	start := 0
	if startWord != "" {
		start = slices.Index(words, startWord)
		if start < 0 {
			_, _ = color.New(color.FgRed).Fprintf(r.writer, "The word %q was not found in %q.\n", startWord, wordListPath)
			return fmt.Errorf("%w: %q", ErrStartWordNotFound, startWord)
		}
	}
	words = words[start:]

	slog.Default().Info("starting batch",
		"wordList", wordListPath,
		"startWord", startWord,
		"words", len(words),
		"flushEvery", r.flushEvery)

	if r.flushEvery == 1 {
		return r.runEach(ctx, words)
	}
	return r.runBuffered(ctx, words)
}

func (r *Runner) reportProgress(word string) {
	_, _ = fmt.Fprintf(r.writer, "Processing word: %s\n", word)
}

func (r *Runner) runEach(ctx context.Context, words []string) error {
	for _, word := range words {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.reportProgress(word)
		if err := r.store.FetchAndSave(ctx, r.source, word); err != nil {
			return fmt.Errorf("store.FetchAndSave(%s) > %w", word, err)
		}
	}
	return nil
}

// runBuffered loads the store once and writes it after every flushEvery merged
// words and at the end. A crash loses at most the merges since the last write.
func (r *Runner) runBuffered(ctx context.Context, words []string) error {
	dict, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("store.Load > %w", err)
	}

	var pending int
	flush := func() error {
		if pending == 0 {
			return nil
		}
		if err := r.store.Persist(dict); err != nil {
			return fmt.Errorf("store.Persist > %w", err)
		}
		slog.Default().Debug("flushed dictionary", "words", pending)
		pending = 0
		return nil
	}

	for _, word := range words {
		if err := ctx.Err(); err != nil {
			if flushErr := flush(); flushErr != nil {
				return errors.Join(err, flushErr)
			}
			return err
		}

		r.reportProgress(word)
		definitions := r.source.Definitions(ctx, word)
		if len(definitions) == 0 {
			slog.Default().Debug("no definitions found", "word", word)
			continue
		}
		dict = r.store.Merge(dict, word, definitions)
		pending++
		if pending >= r.flushEvery {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}
