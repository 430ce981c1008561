package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spboyer/mixlab/internal/webserver"
)

func newServeCommand() *cobra.Command {
	var (
		port      int
		noBrowser bool
		origins   []string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web form",
		Long: `Start the mix form in the browser, backed by the JSON API under /api.

The server starts even when the model artifacts cannot be loaded: the form
then shows the load error and predictions answer 503 until restarted with
valid artifacts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadProject(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("port") {
				port = cfg.Server.Port
			}
			if !cmd.Flags().Changed("no-browser") && cfg.Server.NoBrowser != nil {
				noBrowser = *cfg.Server.NoBrowser
			}

			svc, err := loadService(cmd, cfg)
			if err != nil {
				return err
			}
			if err := svc.Ready(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}

			srv, err := webserver.New(webserver.Config{
				Port:           port,
				NoBrowser:      noBrowser,
				Logger:         slog.Default(),
				Backend:        svc,
				Form:           formSpec(cfg),
				AllowedOrigins: origins,
				Out:            cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}
	cmd.Flags().IntVar(&port, "port", webserver.DefaultPort, "Port to listen on")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "Do not open a browser")
	cmd.Flags().StringSliceVar(&origins, "cors-origin", nil, "Allow cross-origin API calls from these origins")
	return cmd
}
