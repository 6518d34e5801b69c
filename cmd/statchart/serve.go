package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/spektr-org/statchart/cache"
	"github.com/spektr-org/statchart/server"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the graph browser HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings()
			if err != nil {
				return err
			}
			if addr != "" {
				s.Server.HTTPAddr = addr
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			c, err := cache.New(ctx, s.Cache)
			if err != nil {
				return err
			}
			logrus.WithField("component", "cli").Infof("🔧 %s environment, upstream %s", s.AppEnv, s.Upstream.URL)
			return server.New(s, c, nil).ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides [server] HTTP_ADDR)")
	return cmd
}
