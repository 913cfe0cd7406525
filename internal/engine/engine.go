// Package engine runs the full normalization pipeline: map each input
// table's header onto the canonical schema, normalize its rows concurrently,
// then merge everything into one deduplicated output table.
package engine

import (
	"context"
	"runtime"

	"github.com/chesapeakestays/propdata-server/internal/canonical"
	"github.com/chesapeakestays/propdata-server/internal/dedup"
	"github.com/chesapeakestays/propdata-server/internal/id"
	"github.com/chesapeakestays/propdata-server/internal/logger"
	"github.com/chesapeakestays/propdata-server/internal/mapper"
	"github.com/chesapeakestays/propdata-server/internal/normalizer"
	"github.com/chesapeakestays/propdata-server/internal/tabular"
)

// Engine normalizes and merges parsed input tables.
type Engine struct {
	logger  *logger.Logger
	workers int
}

// New creates an engine. workers bounds the per-table row fan-out; zero
// means one worker per CPU.
func New(log *logger.Logger, workers int) *Engine {
	return &Engine{
		logger:  log,
		workers: workers,
	}
}

// Process normalizes every table and merges the results. Tables whose rows
// all lack contact info contribute nothing; an all-empty input yields an
// empty (header-only) table, not an error.
func (e *Engine) Process(ctx context.Context, tables []tabular.Table) (canonical.Table, error) {
	run := id.MustGenerate("run")
	log := e.logger.WithField("run_id", run)

	var records []canonical.Record
	for _, t := range tables {
		kept, err := e.processTable(ctx, log, t)
		if err != nil {
			return canonical.Table{}, err
		}
		records = append(records, kept...)
	}

	merged := dedup.Merge(records)
	log.Info("merge complete",
		"tables", len(tables),
		"records_before_dedup", len(records),
		"records_after_dedup", merged.Len())

	return merged, nil
}

// processTable maps one table's header and normalizes its rows with a
// bounded worker pool. Row order within the table is preserved.
func (e *Engine) processTable(ctx context.Context, log *logger.Logger, t tabular.Table) ([]canonical.Record, error) {
	m := mapper.Map(t.Columns)

	for _, pair := range m.DiscardedOwners() {
		log.Debug("dropping co-owner columns",
			"table", t.Name,
			"ordinal", pair.Ordinal,
			"first_column", pair.First.Name,
			"last_column", pair.Last.Name)
	}

	if len(t.Rows) == 0 {
		log.Info("table normalized", "table", t.Name, "rows", 0, "kept", 0)
		return nil, nil
	}

	workers := e.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	type job struct {
		row   []string
		index int
	}

	type result struct {
		record canonical.Record
		keep   bool
		index  int
	}

	jobs := make(chan job, len(t.Rows))
	results := make(chan result, len(t.Rows))

	for w := 0; w < workers; w++ {
		go func() {
			for j := range jobs {
				select {
				case <-ctx.Done():
					results <- result{index: j.index}
					return
				default:
				}

				rec, keep := normalizer.Normalize(j.row, &m)
				results <- result{record: rec, keep: keep, index: j.index}
			}
		}()
	}

	for i, row := range t.Rows {
		select {
		case jobs <- job{row: row, index: i}:
		case <-ctx.Done():
			close(jobs)
			return nil, ctx.Err()
		}
	}
	close(jobs)

	// Collect into index order so output ordering never depends on worker
	// scheduling.
	ordered := make([]result, len(t.Rows))
	for n := 0; n < len(t.Rows); n++ {
		select {
		case r := <-results:
			ordered[r.index] = r
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kept := make([]canonical.Record, 0, len(t.Rows))
	for _, r := range ordered {
		if r.keep {
			kept = append(kept, r.record)
		}
	}

	log.Info("table normalized",
		"table", t.Name,
		"rows", len(t.Rows),
		"kept", len(kept),
		"dropped", len(t.Rows)-len(kept))

	return kept, nil
}
