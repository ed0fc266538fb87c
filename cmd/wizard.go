package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Ivan-Kats/xlsx2update/internal/dataset"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactively pick a spreadsheet, columns and table",
	Long: `
Step through the same choices as generate interactively:

  1. spreadsheet file (skipped when --in is given)
  2. update columns (at least one)
  3. reference column (exactly one)
  4. table name (must not be blank)

Batch size, output directory, mode and dialect come from flags and config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		in, _ := cmd.Flags().GetString("in")
		ds, in, err := askDataset(in, cfg.Sheet)
		if err != nil {
			return err
		}
		columns := ds.Columns()

		update, err := askUpdateColumns(columns)
		if err != nil {
			return err
		}

		ref, err := pterm.DefaultInteractiveSelect.
			WithOptions(columns).
			WithMaxHeight(10).
			Show("Reference column")
		if err != nil {
			return err
		}

		table, err := askTableName()
		if err != nil {
			return err
		}

		spec, err := cfg.BatchSpec(update, ref, table)
		if err != nil {
			return err
		}

		details := fmt.Sprintf("File:      %s\nTable:     %s\nUpdate:    %s\nReference: %s\nRows:      %d (max %d per statement)",
			in, table, strings.Join(update, ", "), ref, ds.Len(), spec.MaxRowsPerBatch)
		fmt.Fprintln(cmd.OutOrStdout(), pterm.DefaultBox.WithTitle("Update").WithPadding(1).Sprint(details))

		_, err = writeUpdates(cmd.OutOrStdout(), cfg, ds, spec)
		return err
	},
}

// askDataset keeps asking for a file until one loads.
func askDataset(path, sheet string) (*dataset.Dataset, string, error) {
	for {
		if path == "" {
			answer, err := pterm.DefaultInteractiveTextInput.Show("Spreadsheet file (.xlsx or .csv)")
			if err != nil {
				return nil, "", err
			}
			path = strings.TrimSpace(answer)
			if path == "" {
				continue
			}
		}

		ds, err := dataset.Load(path, sheet)
		if err == nil {
			return ds, path, nil
		}
		pterm.Error.Println(err)
		path = ""
	}
}

func askUpdateColumns(columns []string) ([]string, error) {
	for {
		selected, err := pterm.DefaultInteractiveMultiselect.
			WithOptions(columns).
			WithMaxHeight(10).
			Show("Update columns")
		if err != nil {
			return nil, err
		}
		if len(selected) > 0 {
			return orderLike(columns, selected), nil
		}
		pterm.Warning.Println("Select at least one column to update")
	}
}

// orderLike returns selected in the order the names appear in columns.
func orderLike(columns, selected []string) []string {
	picked := make(map[string]bool, len(selected))
	for _, s := range selected {
		picked[s] = true
	}
	out := make([]string, 0, len(selected))
	for _, c := range columns {
		if picked[c] {
			out = append(out, c)
		}
	}
	return out
}

func askTableName() (string, error) {
	for {
		answer, err := pterm.DefaultInteractiveTextInput.Show("Table name")
		if err != nil {
			return "", err
		}
		if table := strings.TrimSpace(answer); table != "" {
			return table, nil
		}
		pterm.Warning.Println("Table name must not be blank")
	}
}

func init() {
	wizardCmd.Flags().StringP("in", "i", "", "input spreadsheet (.xlsx or .csv)")
}
