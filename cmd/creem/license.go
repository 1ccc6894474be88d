package main

import (
	"fmt"
	"io"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/garrettladley/creem/internal/client/creem"
	"github.com/garrettladley/creem/internal/profile"
)

func licenseCmd() *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "license",
		Short: "Validate, activate or deactivate license keys",
	}
	cmd.PersistentFlags().StringVar(&profileName, "profile", profile.DefaultProfile, "configuration profile to use")

	var instanceID string
	validate := &cobra.Command{
		Use:   "validate <key>",
		Short: "Validate a license key for an instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLicense(cmd, profileName, func(c *creem.Client) (creem.Object, error) {
				return c.Licenses.Validate(cmd.Context(), args[0], instanceID)
			})
		},
	}
	validate.Flags().StringVar(&instanceID, "instance-id", "", "license instance id")
	_ = validate.MarkFlagRequired("instance-id")

	var instanceName string
	activate := &cobra.Command{
		Use:   "activate <key>",
		Short: "Activate a license key for a new instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLicense(cmd, profileName, func(c *creem.Client) (creem.Object, error) {
				return c.Licenses.Activate(cmd.Context(), args[0], instanceName)
			})
		},
	}
	activate.Flags().StringVar(&instanceName, "instance-name", "", "name for the new instance")
	_ = activate.MarkFlagRequired("instance-name")

	var deactivateID string
	deactivate := &cobra.Command{
		Use:   "deactivate <key>",
		Short: "Deactivate a license instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLicense(cmd, profileName, func(c *creem.Client) (creem.Object, error) {
				return c.Licenses.Deactivate(cmd.Context(), args[0], deactivateID)
			})
		},
	}
	deactivate.Flags().StringVar(&deactivateID, "instance-id", "", "license instance id")
	_ = deactivate.MarkFlagRequired("instance-id")

	cmd.AddCommand(validate, activate, deactivate)
	return cmd
}

func runLicense(cmd *cobra.Command, profileName string, call func(*creem.Client) (creem.Object, error)) error {
	client, err := newClient(profileName)
	if err != nil {
		return err
	}

	result, err := call(client)
	if err != nil {
		return describeAPIError(err)
	}
	return printObject(cmd.OutOrStdout(), result)
}

func printObject(w io.Writer, obj creem.Object) error {
	data, err := go_json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
