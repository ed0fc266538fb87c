// Package cmd implements the xlsx2update command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Ivan-Kats/xlsx2update/internal/config"
	"github.com/Ivan-Kats/xlsx2update/internal/logging"
	"github.com/Ivan-Kats/xlsx2update/internal/query"
)

var (
	cfgFile   string
	configErr error
	logger    = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "xlsx2update",
	Short: "Turn spreadsheet rows into batched SQL UPDATE statements",
	Long: `
xlsx2update reads a spreadsheet (.xlsx or .csv), and for the chosen update
columns and reference column writes UPDATE statements of the form

  UPDATE <table>
  SET <col> = CASE <ref> WHEN '<key>' THEN '<value>' ... ELSE <col> END, ...
  WHERE <ref> IN ('<key>', ...);

At most --max-rows rows go into one statement; each statement is saved as
update_query_part_<N>.sql.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return fmt.Errorf("failed to read config file: %w", configErr)
		}
		logger = logging.New(viper.GetString(config.KeyLogLevel), cmd.ErrOrStderr())
		return nil
	},
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+".json)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.Int("max-rows", query.DefaultMaxRowsPerBatch, "maximum rows per UPDATE statement")
	pf.StringP("out", "o", ".", "directory for the generated .sql files")
	pf.StringP("sheet", "s", "", "sheet name (default first sheet)")
	pf.String("mode", string(query.ModeLiteral), "value rendering: literal, escaped or params")
	pf.String("dialect", string(query.Postgres), "SQL dialect: postgresql, mysql or sqlite")
	pf.Bool("quote-identifiers", false, "quote table and column names (escaped and params modes)")
	pf.Bool("tx", false, "wrap every file in BEGIN; ... COMMIT;")

	bindFlag(pf, config.KeyLogLevel, "log-level")
	bindFlag(pf, config.KeyMaxRowsPerBatch, "max-rows")
	bindFlag(pf, config.KeyOutDir, "out")
	bindFlag(pf, config.KeySheet, "sheet")
	bindFlag(pf, config.KeyMode, "mode")
	bindFlag(pf, config.KeyDialect, "dialect")
	bindFlag(pf, config.KeyQuoteIdentifiers, "quote-identifiers")
	bindFlag(pf, config.KeyTransaction, "tx")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(columnsCmd)
	rootCmd.AddCommand(wizardCmd)
	rootCmd.AddCommand(versionCmd)
}

func bindFlag(fs *pflag.FlagSet, key, name string) {
	if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", name, err))
	}
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		_ = godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName(config.FileName)
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	configErr = nil
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			configErr = err
		}
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	logger.Debug().
		Int(config.KeyMaxRowsPerBatch, cfg.MaxRowsPerBatch).
		Str(config.KeyMode, cfg.Mode).
		Str(config.KeyDialect, cfg.Dialect).
		Str("config_file", viper.ConfigFileUsed()).
		Msg("configuration loaded")
	return cfg, nil
}
