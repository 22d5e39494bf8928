package main

import (
	"fmt"
	"io"

	"github.com/at-ishikawa/wordharvest/internal/config"
	"github.com/at-ishikawa/wordharvest/internal/dictionary"
	"github.com/at-ishikawa/wordharvest/internal/wordreference"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

func newDefinitionClient(cfg config.SourceConfig) *wordreference.Client {
	return wordreference.NewClient(wordreference.Config{
		BaseURL:        cfg.BaseURL,
		Headers:        cfg.Headers,
		Timeout:        cfg.Timeout,
		RetryAttempts:  cfg.RetryAttempts,
		RetryDelay:     cfg.RetryDelay,
		CacheDirectory: cfg.CacheDirectory,
	})
}

func openStore(cfg config.StoreConfig, writer io.Writer) (*dictionary.Store, error) {
	store, err := dictionary.NewStore(cfg.Path, writer)
	if err != nil {
		return nil, fmt.Errorf("dictionary.NewStore(%s) > %w", cfg.Path, err)
	}
	return store, nil
}
