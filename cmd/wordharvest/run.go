package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordharvest/internal/harvest"
)

func newRunCommand() *cobra.Command {
	var wordList, startWord string
	var flushEvery int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch the definitions of every word in the word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if cmd.Flags().Changed("words") {
				cfg.Batch.WordList = wordList
			}
			if cmd.Flags().Changed("start") {
				cfg.Batch.StartWord = startWord
			}
			if cmd.Flags().Changed("flush-every") {
				if flushEvery < 1 {
					return fmt.Errorf("--flush-every must be 1 or greater")
				}
				cfg.Batch.FlushEvery = flushEvery
			}

			store, err := openStore(cfg.Store, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			runner := harvest.NewRunner(store, newDefinitionClient(cfg.Source), cmd.OutOrStdout(), cfg.Batch.FlushEvery)
			if err := runner.Run(cmd.Context(), cfg.Batch.WordList, cfg.Batch.StartWord); err != nil {
				return fmt.Errorf("runner.Run > %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&wordList, "words", "", "Word list file, one word per line (default from batch.word_list)")
	cmd.Flags().StringVar(&startWord, "start", "", "Skip the words before this one (default from batch.start_word)")
	cmd.Flags().IntVar(&flushEvery, "flush-every", 1, "Number of merged words between writes of the store (default from batch.flush_every)")
	return cmd
}
