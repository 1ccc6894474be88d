package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/creem/internal/client/creem"
	"github.com/garrettladley/creem/internal/config"
	"github.com/garrettladley/creem/internal/profile"
	"github.com/garrettladley/creem/internal/theme"
)

func portalCmd() *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "portal <customer-id>",
		Short: "Print a customer's billing portal link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(profileName)
			if err != nil {
				return err
			}

			link, err := client.Customers.CreatePortalLink(cmd.Context(), args[0])
			if err != nil {
				return describeAPIError(err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), theme.New().Field("Portal", link))
			return nil
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", profile.DefaultProfile, "configuration profile to use")
	return cmd
}

func newClient(profileName string) (*creem.Client, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return creem.FromProfile(cfg.Resolver(), profileName,
		creem.WithTimeout(cfg.HTTP.Timeout),
		creem.WithRetry(cfg.HTTP.RetryTimes, cfg.HTTP.RetrySleep),
	)
}

func describeAPIError(err error) error {
	apiErr := creem.AsAPIError(err)
	if apiErr == nil {
		return err
	}
	if apiErr.TraceID != "" {
		return fmt.Errorf("%w (trace id %s)", apiErr, apiErr.TraceID)
	}
	return apiErr
}
