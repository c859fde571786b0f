package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newServeCmd() *cobra.Command {
	var cfgFile string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve search requests over HTTP",
		Long: `Run an HTTP server with the same search engine.

Endpoints:
  GET  /ping     healthcheck
  POST /search   {"query": "...", "content": "...", "ignore_case": false}

The address is taken from --address, MINIGREP_ADDRESS or the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("binding flags: %w", err)
			}

			param, err := parser.InitServerParam(v, cfgFile)
			if err != nil {
				return fmt.Errorf("loading server config: %w", err)
			}

			// готовим слушатель прерываний - контекст для всего сервера
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return appmode.RunServer(ctx, stop, param, newLogger(param))
		},
	}
	serveCmd.Flags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	serveCmd.Flags().String("address", model.DefaultServerAddress, "address to listen on")
	serveCmd.Flags().BoolP("verbose", "v", false, "verbose output")

	return serveCmd
}

func newLogger(param *model.ServerParam) *slog.Logger {
	logLevel := slog.LevelInfo
	if param.Verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
}
