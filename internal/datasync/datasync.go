// Package datasync mirrors the JSON dictionary store into the database and exports it to other formats.
package datasync

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/at-ishikawa/wordharvest/internal/dictionary"
)

// ImportResult tracks counts for each import operation.
type ImportResult struct {
	New     int
	Updated int
	Skipped int
}

// ImportOptions controls import behavior.
type ImportOptions struct {
	DryRun         bool
	UpdateExisting bool
}

// Importer writes dictionary store entries to the database.
type Importer struct {
	dictionaryRepo dictionary.DictionaryRepository
	writer         io.Writer
}

// NewImporter creates a new Importer.
func NewImporter(dictionaryRepo dictionary.DictionaryRepository, writer io.Writer) *Importer {
	return &Importer{
		dictionaryRepo: dictionaryRepo,
		writer:         writer,
	}
}

// ImportDictionary upserts every word of dict whose definitions differ from the stored row.
// Words are processed in lexical order and written in a single batch.
func (imp *Importer) ImportDictionary(ctx context.Context, dict dictionary.Dictionary, opts ImportOptions) (*ImportResult, error) {
	existingEntries, err := imp.dictionaryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("FindAll() > %w", err)
	}
	existing := make(map[string]dictionary.WordEntry, len(existingEntries))
	for _, e := range existingEntries {
		entry, err := e.WordEntry()
		if err != nil {
			return nil, fmt.Errorf("WordEntry() > %w", err)
		}
		existing[e.Word] = entry
	}

	var result ImportResult
	var changed []*dictionary.DictionaryEntry
	for _, word := range dict.Words() {
		wordEntry := dict[word]
		stored, found := existing[word]

		if found && (slices.Equal(stored.Means, wordEntry.Means) || !opts.UpdateExisting) {
			_, _ = fmt.Fprintf(imp.writer, "  [SKIP]  %q\n", word)
			result.Skipped++
			continue
		}

		entry, err := dictionary.NewDictionaryEntry(word, wordEntry)
		if err != nil {
			return nil, fmt.Errorf("NewDictionaryEntry() > %w", err)
		}
		changed = append(changed, entry)

		if found {
			_, _ = fmt.Fprintf(imp.writer, "  [UPDATE]  %q (%d definitions)\n", word, len(wordEntry.Means))
			result.Updated++
		} else {
			_, _ = fmt.Fprintf(imp.writer, "  [NEW]  %q (%d definitions)\n", word, len(wordEntry.Means))
			result.New++
		}
	}

	if opts.DryRun || len(changed) == 0 {
		return &result, nil
	}
	if err := imp.dictionaryRepo.BatchUpsert(ctx, changed); err != nil {
		return nil, fmt.Errorf("BatchUpsert() > %w", err)
	}
	return &result, nil
}

// Exporter reads the database back into a dictionary.
type Exporter struct {
	dictionaryRepo dictionary.DictionaryRepository
}

// NewExporter creates a new Exporter.
func NewExporter(dictionaryRepo dictionary.DictionaryRepository) *Exporter {
	return &Exporter{dictionaryRepo: dictionaryRepo}
}

// ExportDictionary returns every mirrored word as a Dictionary.
func (exp *Exporter) ExportDictionary(ctx context.Context) (dictionary.Dictionary, error) {
	entries, err := exp.dictionaryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("FindAll() > %w", err)
	}

	dict := make(dictionary.Dictionary, len(entries))
	for _, e := range entries {
		entry, err := e.WordEntry()
		if err != nil {
			return nil, fmt.Errorf("WordEntry() > %w", err)
		}
		dict[e.Word] = entry
	}
	return dict, nil
}
