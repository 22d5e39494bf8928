package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/at-ishikawa/wordharvest/internal/database"
	"github.com/at-ishikawa/wordharvest/internal/datasync"
	"github.com/at-ishikawa/wordharvest/internal/dictionary"
)

type Format string

func (f *Format) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "Format"
}

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	_          pflag.Value = (*Format)(nil)
	allFormats             = []Format{FormatYAML, FormatJSON}
)

func newDictionarySink(format Format, output string) datasync.DictionarySink {
	switch format {
	case FormatJSON:
		return datasync.NewJSONDictionarySink(output)
	case FormatYAML:
		fallthrough
	default:
		return datasync.NewYAMLDictionarySink(output)
	}
}

func newExportCommand() *cobra.Command {
	format := FormatYAML
	var output string
	var fromDatabase bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of the dictionary to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			var dict dictionary.Dictionary
			if fromDatabase {
				db, err := database.Open(cfg.Database)
				if err != nil {
					return fmt.Errorf("database.Open() > %w", err)
				}
				defer func() {
					_ = db.Close()
				}()

				exporter := datasync.NewExporter(dictionary.NewDBDictionaryRepository(db))
				dict, err = exporter.ExportDictionary(cmd.Context())
				if err != nil {
					return fmt.Errorf("exporter.ExportDictionary() > %w", err)
				}
			} else {
				store, err := openStore(cfg.Store, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				dict, err = store.Load()
				if err != nil {
					return fmt.Errorf("store.Load() > %w", err)
				}
			}

			if err := newDictionarySink(format, output).WriteAll(dict); err != nil {
				return fmt.Errorf("WriteAll() > %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d words to %s\n", len(dict), output)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Var(&format, "format", fmt.Sprintf("Output format. Possible values are %v", allFormats))
	flags.StringVar(&output, "output", "", "Output file")
	flags.BoolVar(&fromDatabase, "from-database", false, "Export the words mirrored in the database instead of the store file")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
