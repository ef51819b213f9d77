package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mailfinch/client-go/internal/cliconfig"
	"github.com/mailfinch/client-go/internal/mockserver"
)

func main() {
	var (
		port     int
		keys     []string
		devMode  bool
		logLevel string
	)

	root := &cobra.Command{
		Use:   "mockserver",
		Short: "Run an in-memory MailFinch API for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := cliconfig.Logger(os.Stderr, logLevel)
			if err != nil {
				return fmt.Errorf("log-level: %w", err)
			}

			if len(keys) == 0 {
				keys = []string{uuid.NewString()}
				log.Info().Str("api_key", keys[0]).Msg("generated API key")
			}

			s := mockserver.New(mockserver.Options{
				APIKeys: keys,
				Port:    port,
				DevMode: devMode,
				Logger:  &log,
			})

			go func() {
				if err := s.Run(); err != nil {
					log.Fatal().Err(err).Msg("error running server")
				}
			}()
			log.Info().Int("port", port).Msg("mock MailFinch API listening")

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			sig := <-quit
			log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.Shutdown(ctx); err != nil {
				return err
			}
			log.Info().Msg("server shutdown complete")
			return nil
		},
	}

	root.Flags().IntVar(&port, "port", 8080, "listen port")
	root.Flags().StringSliceVar(&keys, "api-key", nil, "accepted API key (repeatable; default: one random key)")
	root.Flags().BoolVar(&devMode, "dev", false, "gin debug mode")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
