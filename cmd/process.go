package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/loanpack/internal/pkgproc"
	"github.com/sells-group/loanpack/internal/summary"
)

var (
	processOutput string
	processJSON   bool
)

var processCmd = &cobra.Command{
	Use:   "process <package-id>",
	Short: "Process one loan package through the extraction pipeline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("process"); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, err := newStore()
		if err != nil {
			return err
		}
		processor := pkgproc.New(newClient(), store, cfg.Documents.Root,
			pkgproc.WithConcurrency(cfg.Processor.Concurrency))

		result, err := processor.Process(ctx, args[0])
		if err != nil {
			return err
		}
		assessment := summary.Summarize(result.Summary, result.Documents)

		if processOutput != "" {
			payload := struct {
				Summary    any                `json:"summary"`
				Documents  any                `json:"documents"`
				Assessment summary.Assessment `json:"assessment"`
			}{result.Summary, result.Documents, assessment}

			data, err := json.MarshalIndent(payload, "", "  ")
			if err != nil {
				return eris.Wrap(err, "encode result")
			}
			if err := os.WriteFile(processOutput, data, 0o644); err != nil {
				return eris.Wrapf(err, "write %s", processOutput)
			}
			fmt.Printf("Result written to %s\n", processOutput)
		}

		if processJSON {
			data, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return eris.Wrap(err, "encode result")
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Print(summary.FormatReport(*result, assessment))
		return nil
	},
}

func init() {
	processCmd.Flags().StringVarP(&processOutput, "output", "o", "", "write full result JSON to file")
	processCmd.Flags().BoolVar(&processJSON, "json", false, "print raw result JSON instead of the report")
	rootCmd.AddCommand(processCmd)
}
