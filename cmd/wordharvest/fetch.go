package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFetchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch WORD...",
		Short: "Fetch the definitions of the given words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			store, err := openStore(cfg.Store, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			client := newDefinitionClient(cfg.Source)

			ctx := cmd.Context()
			for _, word := range args {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := store.FetchAndSave(ctx, client, word); err != nil {
					return fmt.Errorf("store.FetchAndSave(%s) > %w", word, err)
				}
			}
			return nil
		},
	}
}
