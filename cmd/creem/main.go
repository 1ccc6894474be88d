package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/garrettladley/creem/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:          "creem",
		Short:        "Creem payments client and webhook receiver",
		Version:      version.Get(),
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		testWebhookCmd(),
		portalCmd(),
		licenseCmd(),
		listenCmd(),
	)

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
