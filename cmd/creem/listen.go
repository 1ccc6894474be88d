package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/garrettladley/creem/internal/config"
	"github.com/garrettladley/creem/internal/profile"
	xredis "github.com/garrettladley/creem/internal/redis"
	"github.com/garrettladley/creem/internal/service/webhook"
	"github.com/garrettladley/creem/internal/storage"
	"github.com/garrettladley/creem/internal/theme"
)

func listenCmd() *cobra.Command {
	var kindNames []string

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Print notifications forwarded to Redis by a running receiver",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}
			if cfg.Redis.URL == "" {
				return fmt.Errorf("REDIS_URL is not set")
			}

			kinds, err := parseKinds(kindNames)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			client, err := xredis.Connect(ctx, cfg.Redis.URL)
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			msgs, unsubscribe, err := storage.Subscribe(ctx, client, kinds...)
			if err != nil {
				return err
			}
			defer unsubscribe()

			t := theme.New()
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, t.Info("Listening for notifications, press Ctrl+C to stop"))

			for m := range msgs {
				id := m.ID
				if id == "" {
					id = "-"
				}
				profileName := m.Profile
				if profileName == "" {
					profileName = profile.DefaultProfile
				}
				_, _ = fmt.Fprintln(out,
					t.Field(m.Kind, m.EventType)+"  "+
						t.Field("profile", profileName)+"  "+
						t.Field("id", id)+"  "+
						t.Field("at", strconv.FormatInt(m.CreatedAt, 10)))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&kindNames, "kind", nil, "notification kinds to follow (default: all)")
	return cmd
}

func parseKinds(names []string) ([]webhook.Kind, error) {
	byName := make(map[string]webhook.Kind)
	for _, k := range webhook.Kinds() {
		byName[k.String()] = k
	}

	kinds := make([]webhook.Kind, 0, len(names))
	for _, name := range names {
		k, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown notification kind: %s", name)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}
