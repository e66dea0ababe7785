package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/loanpack/internal/config"
	"github.com/sells-group/loanpack/internal/manifest"
	"github.com/sells-group/loanpack/pkg/xtract"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "loanpack",
	Short: "Loan package document processing pipeline",
	Long:  "Routes loan-package documents through AI extraction, aggregates results, reconciles extracted values onto application form fields, and summarizes application status.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// newStore loads the configuration tables, applying the mapping-file
// override when configured.
func newStore() (*manifest.Store, error) {
	store := manifest.Defaults()
	if cfg.Mappings.File != "" {
		table, err := manifest.LoadMappings(cfg.Mappings.File)
		if err != nil {
			return nil, err
		}
		store.Mappings = table
	}
	return store, nil
}

// newClient builds the extraction service client from config.
func newClient() xtract.Client {
	opts := []xtract.Option{
		xtract.WithBaseURL(cfg.Xtract.BaseURL),
		xtract.WithProcessTimeout(time.Duration(cfg.Xtract.ProcessTimeoutSecs) * time.Second),
		xtract.WithRegisterTimeout(time.Duration(cfg.Xtract.RegisterTimeoutSecs) * time.Second),
	}
	if cfg.Xtract.RateLimitRPS > 0 {
		opts = append(opts, xtract.WithRateLimit(cfg.Xtract.RateLimitRPS))
	}
	return xtract.NewClient(cfg.Xtract.Key, opts...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
