package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/garrettladley/creem/internal/config"
	"github.com/garrettladley/creem/internal/events"
	xredis "github.com/garrettladley/creem/internal/redis"
	"github.com/garrettladley/creem/internal/server"
	"github.com/garrettladley/creem/internal/service/webhook"
	"github.com/garrettladley/creem/internal/storage"
	"github.com/garrettladley/creem/internal/xslog"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the webhook receiver",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			logger := xslog.NewLogger(os.Stdout, cfg.LogLevel, cfg.Env).With(xslog.Env(cfg.Env.String()))
			slog.SetDefault(logger)

			return serve(cmd.Context(), cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	bus := events.New()

	if err := bus.SubscribeAll(logNotification(logger)); err != nil {
		return fmt.Errorf("failed to subscribe logger: %w", err)
	}

	if cfg.Redis.URL != "" {
		logger.InfoContext(ctx, "initializing redis notification forwarder")
		client, err := xredis.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("failed to initialize redis client: %w", err)
		}
		defer func() {
			if err := client.Close(); err != nil {
				logger.ErrorContext(ctx, "failed to close redis client", xslog.Error(err))
			}
		}()

		if err := bus.SubscribeAll(storage.NewRedisPublisher(client).Listener()); err != nil {
			return fmt.Errorf("failed to subscribe redis forwarder: %w", err)
		}
	}

	resolver := cfg.Resolver()
	for _, name := range resolver.Names() {
		if resolver.WebhookSecret(name) == "" {
			logger.WarnContext(ctx, "profile has no webhook secret; deliveries will be rejected", xslog.Profile(name))
		}
	}

	h := server.NewHandler(server.Options{
		Logger:          logger,
		WebhookPath:     cfg.Webhook.Path,
		SignatureHeader: cfg.Webhook.SignatureHeader,
		Verifier:        webhook.NewVerifier(resolver),
		Service:         webhook.NewProcessor(bus),
	})

	return server.New(":"+cfg.Port, h, logger).Run(ctx)
}

func logNotification(logger *slog.Logger) events.Listener {
	return func(ctx context.Context, n webhook.Notification) error {
		attrs := []any{xslog.Kind(n.Type().String())}
		switch n := n.(type) {
		case webhook.EventNotification:
			attrs = append(attrs, xslog.EventType(n.Envelope.EventType), xslog.EventID(n.Envelope.ID))
		case webhook.AccessNotification:
			attrs = append(attrs, xslog.EventType(n.EventType))
		}
		logger.DebugContext(ctx, "notification published", attrs...)
		return nil
	}
}
