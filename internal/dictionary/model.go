package dictionary

import (
	"fmt"
	"sort"
)

// Dictionary maps a word to every definition collected for it so far.
type Dictionary map[string]WordEntry

// WordEntry holds the definitions of a word in the order they were first seen.
type WordEntry struct {
	Means []string `json:"means" yaml:"means"`
}

// MergeStatus reports what a merge did to the dictionary.
type MergeStatus int

const (
	MergeUnchanged MergeStatus = iota
	MergeInserted
	MergeAppended
)

func (s MergeStatus) String() string {
	switch s {
	case MergeUnchanged:
		return "unchanged"
	case MergeInserted:
		return "inserted"
	case MergeAppended:
		return "appended"
	}
	return fmt.Sprintf("MergeStatus(%d)", int(s))
}

// Merge adds definitions for word.
// A new word is stored with the definitions exactly as given, duplicates included.
// For a known word, only the definitions missing from its entry before this call
// are appended, keeping their arrival order.
func (d Dictionary) Merge(word string, definitions []string) MergeStatus {
	entry, ok := d[word]
	if !ok {
		means := make([]string, len(definitions))
		copy(means, definitions)
		d[word] = WordEntry{Means: means}
		return MergeInserted
	}

	known := make(map[string]struct{}, len(entry.Means))
	for _, mean := range entry.Means {
		known[mean] = struct{}{}
	}

	var added int
	for _, definition := range definitions {
		if _, exists := known[definition]; exists {
			continue
		}
		entry.Means = append(entry.Means, definition)
		added++
	}
	if added == 0 {
		return MergeUnchanged
	}
	d[word] = entry
	return MergeAppended
}

// Words returns the words of the dictionary in lexical order.
func (d Dictionary) Words() []string {
	words := make([]string, 0, len(d))
	for word := range d {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
