package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/Ivan-Kats/xlsx2update/internal/config"
	"github.com/Ivan-Kats/xlsx2update/internal/dataset"
	"github.com/Ivan-Kats/xlsx2update/internal/logging"
	"github.com/Ivan-Kats/xlsx2update/internal/query"
	"github.com/Ivan-Kats/xlsx2update/internal/writer"
)

// writeUpdates is the pipeline shared by generate and wizard: check the
// columns, build the statements and save one file per statement.
func writeUpdates(out io.Writer, cfg *config.Config, ds *dataset.Dataset, spec query.BatchSpec) ([]string, error) {
	log := logging.Component(logger, "generate")

	if err := query.CheckColumns(ds, spec); err != nil {
		return nil, err
	}

	statements, err := query.Generate(ds, spec)
	if err != nil {
		return nil, fmt.Errorf("generate updates: %w", err)
	}
	log.Debug().
		Int("rows", ds.Len()).
		Int("statements", len(statements)).
		Str("table", spec.TableName).
		Msg("statements generated")

	if len(statements) == 0 {
		fmt.Fprintln(out, color.YellowString("⚠ No data rows found, nothing written"))
		return nil, nil
	}

	w := &writer.Writer{
		Dir:         cfg.OutDir,
		Transaction: cfg.Transaction,
		OnWrite: func(k int, path string) {
			log.Debug().Int("part", k).Str("path", path).Msg("statement written")
			fmt.Fprintf(out, "%s Query %d saved as %s.\n", color.GreenString("✓"), k, path)
		},
	}
	paths, err := w.WriteAll(statements)
	if err != nil {
		return paths, fmt.Errorf("write sql: %w", err)
	}

	log.Info().Int("files", len(paths)).Int("rows", ds.Len()).Msg("done")
	fmt.Fprintf(out, "%s %d rows in %d file(s)\n", color.GreenString("✅ Done:"), ds.Len(), len(paths))
	return paths, nil
}
