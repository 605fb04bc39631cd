package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DachengChen/paiBI/ai"
	"github.com/DachengChen/paiBI/applog"
	"github.com/DachengChen/paiBI/config"
	"github.com/DachengChen/paiBI/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the assistant over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		provider, err := ai.NewProvider(appCfg)
		if err != nil {
			return err
		}
		prompts, err := config.NewPromptStore()
		if err != nil {
			return err
		}

		addr := appCfg.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr = serveAddr
		}

		e := server.New(server.NewHandler(provider, prompts.Prompts, language()))

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			applog.L().Info("http server listening", zap.String("addr", addr))
			cmd.Printf("paiBI API listening on %s\n", addr)
			errc <- e.Start(addr)
		}()

		select {
		case err := <-errc:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}
