package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	apperrors "github.com/Ivan-Kats/xlsx2update/internal/errors"
	"github.com/Ivan-Kats/xlsx2update/internal/query"
)

// Config keys, shared by flags, environment variables and the config file.
const (
	KeyMaxRowsPerBatch  = "max_rows_per_batch"
	KeyOutDir           = "out_dir"
	KeySheet            = "sheet"
	KeyMode             = "mode"
	KeyDialect          = "dialect"
	KeyQuoteIdentifiers = "quote_identifiers"
	KeyTransaction      = "transaction"
	KeyLogLevel         = "log_level"
)

// EnvPrefix is prepended to upper-cased keys, e.g. XLSX2UPDATE_MAX_ROWS_PER_BATCH.
const EnvPrefix = "XLSX2UPDATE"

// FileName is the config file looked up in the working directory.
const FileName = "xlsx2update.config"

type Config struct {
	MaxRowsPerBatch  int    `json:"max_rows_per_batch" mapstructure:"max_rows_per_batch"`
	OutDir           string `json:"out_dir" mapstructure:"out_dir"`
	Sheet            string `json:"sheet,omitempty" mapstructure:"sheet"`
	Mode             string `json:"mode" mapstructure:"mode"`
	Dialect          string `json:"dialect" mapstructure:"dialect"`
	QuoteIdentifiers bool   `json:"quote_identifiers,omitempty" mapstructure:"quote_identifiers"`
	Transaction      bool   `json:"transaction,omitempty" mapstructure:"transaction"`
	LogLevel         string `json:"log_level" mapstructure:"log_level"`
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// An explicit 0 must reach Validate, so only fill the default when unset.
	if !v.IsSet(KeyMaxRowsPerBatch) {
		cfg.MaxRowsPerBatch = query.DefaultMaxRowsPerBatch
	}
	if cfg.OutDir == "" {
		cfg.OutDir = "."
	}
	if cfg.Mode == "" {
		cfg.Mode = string(query.ModeLiteral)
	}
	if cfg.Dialect == "" {
		cfg.Dialect = string(query.Postgres)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.MaxRowsPerBatch <= 0 {
		return apperrors.Newf(apperrors.InvalidArgument,
			"%s must be positive, got %d", KeyMaxRowsPerBatch, c.MaxRowsPerBatch)
	}
	if _, err := query.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := query.ParseDialect(c.Dialect); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return apperrors.Wrap(apperrors.InvalidArgument, "invalid "+KeyLogLevel, err)
	}
	return nil
}

// BatchSpec combines the configured rendering options with the per-run
// column and table choices.
func (c *Config) BatchSpec(updateColumns []string, referenceColumn, tableName string) (query.BatchSpec, error) {
	mode, err := query.ParseMode(c.Mode)
	if err != nil {
		return query.BatchSpec{}, err
	}
	dialect, err := query.ParseDialect(c.Dialect)
	if err != nil {
		return query.BatchSpec{}, err
	}

	spec := query.BatchSpec{
		UpdateColumns:    updateColumns,
		ReferenceColumn:  referenceColumn,
		TableName:        tableName,
		MaxRowsPerBatch:  c.MaxRowsPerBatch,
		Mode:             mode,
		Dialect:          dialect,
		QuoteIdentifiers: c.QuoteIdentifiers,
	}
	return spec, spec.Validate()
}
