package dictionary

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// DictionaryEntry is a row of the dictionary_entries table mirroring the JSON store.
type DictionaryEntry struct {
	Word      string          `db:"word"`
	Means     json.RawMessage `db:"means"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// NewDictionaryEntry converts a word entry of the store into a table row.
func NewDictionaryEntry(word string, entry WordEntry) (*DictionaryEntry, error) {
	means := entry.Means
	if means == nil {
		means = []string{}
	}
	encoded, err := json.Marshal(means)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal(%s) > %w", word, err)
	}
	return &DictionaryEntry{
		Word:  word,
		Means: encoded,
	}, nil
}

// WordEntry decodes the means column back into a store entry.
func (e DictionaryEntry) WordEntry() (WordEntry, error) {
	var entry WordEntry
	if err := json.Unmarshal(e.Means, &entry.Means); err != nil {
		return entry, fmt.Errorf("json.Unmarshal(%s) > %w", e.Word, err)
	}
	return entry, nil
}

//go:generate mockgen -source=repository.go -destination=../mocks/dictionary/mock_repository.go -package=mock_dictionary DictionaryRepository

// DictionaryRepository defines operations for managing mirrored dictionary entries.
type DictionaryRepository interface {
	FindAll(ctx context.Context) ([]DictionaryEntry, error)
	BatchUpsert(ctx context.Context, entries []*DictionaryEntry) error
}

// DBDictionaryRepository implements DictionaryRepository using MySQL.
type DBDictionaryRepository struct {
	db *sqlx.DB
}

// NewDBDictionaryRepository creates a new DBDictionaryRepository.
func NewDBDictionaryRepository(db *sqlx.DB) *DBDictionaryRepository {
	return &DBDictionaryRepository{db: db}
}

// FindAll returns all dictionary entries ordered by word.
func (r *DBDictionaryRepository) FindAll(ctx context.Context) ([]DictionaryEntry, error) {
	var entries []DictionaryEntry
	if err := r.db.SelectContext(ctx, &entries, "SELECT word, means, created_at, updated_at FROM dictionary_entries ORDER BY word"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(dictionary_entries) > %w", err)
	}
	return entries, nil
}

// BatchUpsert inserts or replaces the means of every entry in one transaction.
func (r *DBDictionaryRepository) BatchUpsert(ctx context.Context, entries []*DictionaryEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, e := range entries {
		if _, err := tx.NamedExecContext(ctx,
			"INSERT INTO dictionary_entries (word, means) VALUES (:word, :means) ON DUPLICATE KEY UPDATE means = VALUES(means)",
			e); err != nil {
			return fmt.Errorf("tx.NamedExecContext(upsert %s) > %w", e.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit > %w", err)
	}
	return nil
}
