package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/httpserver"
)

var (
	port string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the solver HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				cfg.Port = port
			}
			srv, closeFn, err := httpserver.Bootstrap(cfg)
			if err != nil {
				return err
			}
			defer closeFn()
			log.Info().Str("port", cfg.Port).Msg("starting go-solver")
			return srv.Start(":" + cfg.Port)
		},
	}
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default PORT or 5175)")
}
