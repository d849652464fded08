// Package ingest loads ledger files into raw ledgers.
package ingest

import (
	"context"
	"fmt"

	"fjacquet/spendwise/internal/common"
	"fjacquet/spendwise/internal/logging"
	"fjacquet/spendwise/internal/models"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentFiles bounds the number of ledger files read at once.
const maxConcurrentFiles = 4

// Loader reads ledger files with a fixed delimiter.
type Loader struct {
	delimiter rune
	logger    logging.Logger
}

// NewLoader creates a Loader. A zero delimiter means comma.
func NewLoader(delimiter rune, logger logging.Logger) *Loader {
	if logger == nil {
		logger = logging.NopLogger()
	}
	if delimiter == 0 {
		delimiter = common.DefaultDelimiter
	}
	return &Loader{delimiter: delimiter, logger: logger}
}

// LoadFiles reads every path concurrently. Ledgers come back in the order of
// paths regardless of which file finishes first; the first failure cancels
// the remaining reads.
func (l *Loader) LoadFiles(ctx context.Context, paths []string) ([]models.RawLedger, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("no ledger files given")
	}

	ledgers := make([]models.RawLedger, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFiles)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ledger, err := common.ReadLedgerFile(path, l.delimiter, l.logger)
			if err != nil {
				return err
			}
			ledgers[i] = ledger
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		l.logger.WithError(err).Error("Failed to load ledger files")
		return nil, err
	}

	l.logger.Info("Loaded ledger files", logging.Field{Key: logging.FieldCount, Value: len(ledgers)})
	return ledgers, nil
}
