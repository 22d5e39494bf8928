package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordharvest/internal/database"
	"github.com/at-ishikawa/wordharvest/internal/datasync"
	"github.com/at-ishikawa/wordharvest/internal/dictionary"
	"github.com/at-ishikawa/wordharvest/schemas"
)

func newSyncCommand() *cobra.Command {
	var dryRun bool
	var updateExisting bool
	var migrate bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Mirror the dictionary store into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			store, err := openStore(cfg.Store, out)
			if err != nil {
				return err
			}
			dict, err := store.Load()
			if err != nil {
				return fmt.Errorf("store.Load() > %w", err)
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()

			if migrate && !dryRun {
				results, err := database.Migrate(ctx, db, schemas.Migrations, "migrations")
				if err != nil {
					return fmt.Errorf("database.Migrate() > %w", err)
				}
				for _, result := range results {
					_, _ = fmt.Fprintf(out, "  [MIGRATE]  %s (%s)\n", result.Source.Path, result.Duration)
				}
			}

			importer := datasync.NewImporter(dictionary.NewDBDictionaryRepository(db), out)
			opts := datasync.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			}
			result, err := importer.ImportDictionary(ctx, dict, opts)
			if err != nil {
				return fmt.Errorf("importer.ImportDictionary() > %w", err)
			}

			_, _ = fmt.Fprintln(out, "\nSync Summary:")
			if opts.DryRun {
				_, _ = fmt.Fprintln(out, "  (dry-run mode, no changes made)")
			}
			_, _ = fmt.Fprintf(out, "  Dictionary entries: %d new, %d skipped, %d updated\n", result.New, result.Skipped, result.Updated)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the database")
	cmd.Flags().BoolVar(&updateExisting, "update-existing", false, "Update words whose definitions changed")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Create the dictionary tables before syncing")
	return cmd
}
