// Package main provides a command-line merge tool: it normalizes every
// supported file in a directory and writes one deduplicated CSV.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/chesapeakestays/propdata-server/internal/engine"
	"github.com/chesapeakestays/propdata-server/internal/logger"
	"github.com/chesapeakestays/propdata-server/internal/tabular"
)

func main() {
	inputDir := flag.String("input-dir", ".", "Directory containing input files (csv, xlsx, xls)")
	output := flag.String("output", "merged.csv", "Output CSV path (- for stdout)")
	workers := flag.Int("workers", 0, "Normalization worker count (0 = one per CPU)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.New(logger.Config{
		Level: logger.ParseLevel(*logLevel),
	})

	entries, err := os.ReadDir(*inputDir)
	if err != nil {
		log.Fatal("Failed to read input directory", "dir", *inputDir, "error", err)
	}

	var tables []tabular.Table
	for _, entry := range entries {
		if entry.IsDir() || !tabular.Supported(entry.Name()) {
			continue
		}

		path := filepath.Join(*inputDir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			log.Warn("Skipping unreadable file", "path", path, "error", err)
			continue
		}

		table, err := tabular.Read(entry.Name(), f)
		f.Close()
		if err != nil {
			log.Warn("Skipping unparseable file", "path", path, "error", err)
			continue
		}

		tables = append(tables, table)
	}

	if len(tables) == 0 {
		log.Fatal("No parseable input files found", "dir", *inputDir)
	}

	merged, err := engine.New(log, *workers).Process(context.Background(), tables)
	if err != nil {
		log.Fatal("Processing failed", "error", err)
	}

	if merged.Empty() {
		log.Fatal("No records with contact information found", "files", len(tables))
	}

	out := os.Stdout
	if *output != "-" {
		out, err = os.Create(*output)
		if err != nil {
			log.Fatal("Failed to create output file", "path", *output, "error", err)
		}
		defer out.Close()
	}

	if err := merged.WriteCSV(out); err != nil {
		log.Fatal("Failed to write output", "path", *output, "error", err)
	}

	log.Info("Merge complete",
		"files", len(tables),
		"records", merged.Len(),
		"output", *output,
	)
}
