package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sells-group/loanpack/internal/pkgproc"
	"github.com/sells-group/loanpack/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate("serve"); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		store, err := newStore()
		if err != nil {
			return err
		}

		client := newClient()
		processor := pkgproc.New(client, store, cfg.Documents.Root,
			pkgproc.WithConcurrency(cfg.Processor.Concurrency))

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := server.New(processor, client, store, cfg.Server.AllowedOrigins)
		return srv.Run(ctx, port)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
