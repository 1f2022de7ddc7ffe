package main

import (
	"os"

	"github.com/spf13/cobra"

	"learnhub/internal/interfaces/cli/migrate"
	"learnhub/internal/interfaces/cli/seed"
	"learnhub/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "learnhub",
		Short: "LearnHub - learning management backend",
		Long:  `LearnHub is the API server for the learning management platform, with built-in migration and seeding tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
