// Package statistics summarizes how much of a word list has been harvested into a dictionary.
package statistics

import (
	"slices"

	"github.com/at-ishikawa/wordharvest/internal/dictionary"
)

// DictionaryStatistics holds counts over the stored words
type DictionaryStatistics struct {
	Words              int
	Definitions        int
	MaxDefinitions     int
	MaxDefinitionsWord string // first word in lexical order with MaxDefinitions
}

// CoverageStatistics compares a word list with the stored words
type CoverageStatistics struct {
	ListedWords    int
	HarvestedWords int    // listed words present in the dictionary
	MissingWords   int    // listed words without definitions
	ResumeWord     string // first word after the last harvested one not listed earlier, empty when the list is done
}

// StatisticsResult holds both dictionary and coverage statistics
type StatisticsResult struct {
	Dictionary DictionaryStatistics
	Coverage   CoverageStatistics
}

// AverageDefinitions returns the mean number of definitions per word.
func (s DictionaryStatistics) AverageDefinitions() float64 {
	if s.Words == 0 {
		return 0
	}
	return float64(s.Definitions) / float64(s.Words)
}

// CalculateStatistics calculates statistics of dict and its coverage of words.
// Words listed more than once are counted once per occurrence.
func CalculateStatistics(dict dictionary.Dictionary, words []string) StatisticsResult {
	return StatisticsResult{
		Dictionary: dictionaryStatistics(dict),
		Coverage:   coverageStatistics(dict, words),
	}
}

func dictionaryStatistics(dict dictionary.Dictionary) DictionaryStatistics {
	var stats DictionaryStatistics
	for _, word := range dict.Words() {
		count := len(dict[word].Means)
		stats.Words++
		stats.Definitions += count
		if count > stats.MaxDefinitions {
			stats.MaxDefinitions = count
			stats.MaxDefinitionsWord = word
		}
	}
	return stats
}

func coverageStatistics(dict dictionary.Dictionary, words []string) CoverageStatistics {
	stats := CoverageStatistics{
		ListedWords: len(words),
	}

	lastHarvested := -1
	for i, word := range words {
		if _, ok := dict[word]; ok {
			stats.HarvestedWords++
			lastHarvested = i
		}
	}
	stats.MissingWords = stats.ListedWords - stats.HarvestedWords

	// Run starts at the first occurrence of the resume word, so a word listed
	// earlier would move the batch back before the last harvested one.
	for i := lastHarvested + 1; i < len(words); i++ {
		if slices.Index(words, words[i]) == i {
			stats.ResumeWord = words[i]
			break
		}
	}
	return stats
}
