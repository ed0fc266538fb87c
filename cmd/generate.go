package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Ivan-Kats/xlsx2update/internal/dataset"
	apperrors "github.com/Ivan-Kats/xlsx2update/internal/errors"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate UPDATE statements from a spreadsheet",
	Long: `
Generate batched CASE-based UPDATE statements from a spreadsheet.

In the default literal mode empty cells become empty strings (''); use
--mode escaped to write NULL or --mode params to pass nil instead.

Examples:
  xlsx2update generate --in prices.xlsx --update price,stock --ref sku --table products
  xlsx2update generate --in prices.csv --update price --ref sku --table shop.products \
      --max-rows 500 --mode escaped --quote-identifiers --out sql`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		in, _ := cmd.Flags().GetString("in")
		update, _ := cmd.Flags().GetStringSlice("update")
		ref, _ := cmd.Flags().GetString("ref")
		table, _ := cmd.Flags().GetString("table")

		if in == "" {
			return apperrors.New(apperrors.InvalidArgument, "please provide input file: --in file.xlsx")
		}
		spec, err := cfg.BatchSpec(update, ref, table)
		if err != nil {
			return err
		}

		ds, err := dataset.Load(in, cfg.Sheet)
		if err != nil {
			return err
		}
		logger.Debug().Str("file", in).Int("rows", ds.Len()).Strs("columns", ds.Columns()).Msg("spreadsheet loaded")

		_, err = writeUpdates(cmd.OutOrStdout(), cfg, ds, spec)
		return err
	},
}

func init() {
	generateCmd.Flags().StringP("in", "i", "", "input spreadsheet (.xlsx or .csv)")
	generateCmd.Flags().StringSliceP("update", "u", nil, "columns to update, in SET order (comma separated or repeated)")
	generateCmd.Flags().StringP("ref", "r", "", "reference column identifying each row")
	generateCmd.Flags().StringP("table", "t", "", "target table name")
}
