package cmd

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Ivan-Kats/xlsx2update/internal/dataset"
	apperrors "github.com/Ivan-Kats/xlsx2update/internal/errors"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List the columns (and sheets) of a spreadsheet",
	Long: `
List the header columns of a spreadsheet, i.e. the names accepted by
--update and --ref.

Examples:
  xlsx2update columns --in prices.xlsx
  xlsx2update columns --in prices.xlsx --sheet archive --sheets`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		if in == "" {
			return apperrors.New(apperrors.InvalidArgument, "please provide input file: --in file.xlsx")
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if showSheets, _ := cmd.Flags().GetBool("sheets"); showSheets {
			sheets, err := dataset.Sheets(in)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, pterm.Bold.Sprintf("Sheets (%d)", len(sheets)))
			if err := renderList(out, sheets); err != nil {
				return err
			}
		}

		ds, err := dataset.Load(in, cfg.Sheet)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, pterm.Bold.Sprintf("Columns (%d), %d data rows", len(ds.Columns()), ds.Len()))
		return renderList(out, ds.Columns())
	},
}

func renderList(out io.Writer, names []string) error {
	items := make([]pterm.BulletListItem, len(names))
	for i, name := range names {
		items[i] = pterm.BulletListItem{Level: 0, Text: name}
	}
	s, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(out, s)
	return err
}

func init() {
	columnsCmd.Flags().StringP("in", "i", "", "input spreadsheet (.xlsx or .csv)")
	columnsCmd.Flags().Bool("sheets", false, "also list the sheet names of an .xlsx workbook")
}
