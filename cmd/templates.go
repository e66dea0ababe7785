package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sells-group/loanpack/internal/model"
)

var templatesRemote bool

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List document templates",
	Long:  "Lists the built-in document templates registered for extraction, or the extraction service's predefined templates with --remote.",
	RunE: func(cmd *cobra.Command, args []string) error {
		var templates []model.DocumentTemplate

		if templatesRemote {
			if err := cfg.Validate("templates"); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			var err error
			templates, err = fetchRemoteTemplates(ctx)
			if err != nil {
				return err
			}
		} else {
			store, err := newStore()
			if err != nil {
				return err
			}
			templates = store.Templates
		}

		for _, tmpl := range templates {
			fmt.Printf("%s (%s): %d fields\n", tmpl.Name, tmpl.Identifier, len(tmpl.Fields))
			for _, f := range tmpl.Fields {
				validation := ""
				if f.ValidationMethod != "" {
					validation = fmt.Sprintf(" [%s]", f.ValidationMethod)
				}
				fmt.Printf("  %-24s %s%s\n", f.Name, f.Format, validation)
			}
		}
		return nil
	},
}

func fetchRemoteTemplates(ctx context.Context) ([]model.DocumentTemplate, error) {
	return newClient().PredefinedTemplates(ctx)
}

func init() {
	templatesCmd.Flags().BoolVar(&templatesRemote, "remote", false, "list the extraction service's predefined templates")
	rootCmd.AddCommand(templatesCmd)
}
