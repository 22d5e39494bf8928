package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordharvest/internal/harvest"
	"github.com/at-ishikawa/wordharvest/internal/statistics"
)

func newStatsCommand() *cobra.Command {
	var wordList string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show how much of the word list has been harvested",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cmd.Flags().Changed("words") {
				cfg.Batch.WordList = wordList
			}

			store, err := openStore(cfg.Store, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			dict, err := store.Load()
			if err != nil {
				return fmt.Errorf("store.Load() > %w", err)
			}

			words, err := harvest.ReadWords(cfg.Batch.WordList)
			if err != nil && !errors.Is(err, harvest.ErrWordListNotFound) {
				return fmt.Errorf("harvest.ReadWords() > %w", err)
			}
			listFound := err == nil

			result := statistics.CalculateStatistics(dict, words)
			printStatistics(cmd.OutOrStdout(), cfg.Batch.WordList, listFound, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&wordList, "words", "", "Word list file, one word per line (default from batch.word_list)")
	return cmd
}

func printStatistics(w io.Writer, wordList string, listFound bool, result statistics.StatisticsResult) {
	header := color.New(color.Bold)

	_, _ = header.Fprintln(w, "Dictionary")
	_, _ = fmt.Fprintf(w, "  Words:               %d\n", result.Dictionary.Words)
	_, _ = fmt.Fprintf(w, "  Definitions:         %d\n", result.Dictionary.Definitions)
	_, _ = fmt.Fprintf(w, "  Definitions / word:  %.2f\n", result.Dictionary.AverageDefinitions())
	if result.Dictionary.MaxDefinitionsWord != "" {
		_, _ = fmt.Fprintf(w, "  Most definitions:    %q (%d)\n", result.Dictionary.MaxDefinitionsWord, result.Dictionary.MaxDefinitions)
	}

	_, _ = header.Fprintf(w, "\nWord list %s\n", wordList)
	if !listFound {
		_, _ = color.New(color.FgRed).Fprintln(w, "  The word list does not exist.")
		return
	}
	_, _ = fmt.Fprintf(w, "  Listed:              %d\n", result.Coverage.ListedWords)
	_, _ = fmt.Fprintf(w, "  Harvested:           %d\n", result.Coverage.HarvestedWords)
	_, _ = fmt.Fprintf(w, "  Missing:             %d\n", result.Coverage.MissingWords)
	if result.Coverage.ResumeWord != "" {
		_, _ = color.New(color.FgCyan).Fprintf(w, "  Resume with:         wordharvest run --start %s\n", result.Coverage.ResumeWord)
	}
}
