// Package container provides dependency injection for the spendwise
// application. It wires every component once from the configuration.
package container

import (
	"context"
	"fmt"

	"fjacquet/spendwise/internal/config"
	"fjacquet/spendwise/internal/ingest"
	"fjacquet/spendwise/internal/logging"
	"fjacquet/spendwise/internal/report"
	"fjacquet/spendwise/internal/session"
	"fjacquet/spendwise/internal/store"
	"fjacquet/spendwise/internal/waste"
)

// VocabularySource supplies the waste vocabulary.
type VocabularySource interface {
	LoadVocabulary(extra ...string) (waste.Vocabulary, error)
	SaveVocabulary(path string, vocabulary waste.Vocabulary) error
}

// Container holds all application dependencies. It is immutable after
// creation; dependencies are reached through getters only.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     VocabularySource
	loader    *ingest.Loader
	generator *report.Generator
}

// NewContainer creates and wires all application dependencies. A nil logger
// is replaced by a logrus logger configured from cfg.
func NewContainer(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	}

	delimiter := cfg.Delimiter()

	c := &Container{
		logger:    logger,
		config:    cfg,
		store:     store.NewVocabularyStore(cfg.Waste.VocabularyFile, logger),
		loader:    ingest.NewLoader(delimiter, logger),
		generator: report.NewGenerator(logger, delimiter),
	}

	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)},
		logging.Field{Key: logging.FieldFormat, Value: cfg.Report.Format})
	return c, nil
}

// WithVocabularySource returns a copy of c that reads the vocabulary from
// source.
func (c *Container) WithVocabularySource(source VocabularySource) *Container {
	clone := *c
	clone.store = source
	return &clone
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the vocabulary source.
func (c *Container) GetStore() VocabularySource {
	return c.store
}

// GetLoader returns the ledger file loader.
func (c *Container) GetLoader() *ingest.Loader {
	return c.loader
}

// GetReportGenerator returns the report generator.
func (c *Container) GetReportGenerator() *report.Generator {
	return c.generator
}

// Vocabulary loads the effective waste vocabulary, including the terms set
// in configuration.
func (c *Container) Vocabulary() (waste.Vocabulary, error) {
	return c.store.LoadVocabulary(c.config.Waste.Terms...)
}

// OpenSession loads the ledger files and normalizes them into a new session.
func (c *Container) OpenSession(ctx context.Context, paths []string) (*session.Session, error) {
	ledgers, err := c.loader.LoadFiles(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("error loading ledgers: %w", err)
	}

	s, err := session.New(c.logger, ledgers...)
	if err != nil {
		return nil, fmt.Errorf("error normalizing ledgers: %w", err)
	}
	return s, nil
}
