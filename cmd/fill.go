package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/loanpack/internal/form"
	"github.com/sells-group/loanpack/internal/model"
	"github.com/sells-group/loanpack/internal/reconcile"
)

var (
	fillResult string
	fillOut    string
)

var fillCmd = &cobra.Command{
	Use:   "fill <form.pdf>",
	Short: "Fill an application form from saved extraction results",
	Long:  "Reconciles the extracted fields of a saved package result (see process --output) onto the form fields of a PDF and writes the filled document.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("fill"); err != nil {
			return err
		}

		formPath := args[0]

		data, err := os.ReadFile(fillResult)
		if err != nil {
			return eris.Wrapf(err, "read result %s", fillResult)
		}
		var saved struct {
			Documents []model.DocumentResult `json:"documents"`
		}
		if err := json.Unmarshal(data, &saved); err != nil {
			return eris.Wrapf(err, "parse result %s", fillResult)
		}

		fields, err := form.Fields(formPath)
		if err != nil {
			return err
		}
		if len(fields) == 0 {
			return eris.Errorf("%s has no form fields", formPath)
		}

		store, err := newStore()
		if err != nil {
			return err
		}

		reconciled := reconcile.New(store.Mappings).Reconcile(fields, saved.Documents)

		values := make(map[string]string)
		for _, rf := range reconciled {
			if rf.HasMatch && rf.Type == model.FormFieldText {
				values[rf.Name] = rf.ExtractedValue
			}
		}

		filled, err := form.FillFile(formPath, fillOut, values)
		if err != nil {
			return err
		}

		zap.L().Info("form filled",
			zap.String("form", formPath),
			zap.Int("form_fields", len(fields)),
			zap.Int("matched", len(values)),
			zap.Int("written", len(filled)),
		)
		fmt.Printf("Filled %d of %d form fields into %s\n", len(filled), len(fields), fillOut)
		return nil
	},
}

func init() {
	fillCmd.Flags().StringVarP(&fillResult, "result", "r", "result.json", "saved package result JSON")
	fillCmd.Flags().StringVarP(&fillOut, "out", "o", "filled.pdf", "output PDF path")
	rootCmd.AddCommand(fillCmd)
}
