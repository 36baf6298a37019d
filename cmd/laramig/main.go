package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/laramig/internal/cli"
	"github.com/example/laramig/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "laramig",
		Short:   "laramig - Laravel migration generator",
		Version: version.String(),
		Long: `laramig turns table schemas into Laravel "create table" migrations.
Schemas come from a YAML/JSON file or are read from a SQLite or PostgreSQL database.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.GenerateCmd())
	rootCmd.AddCommand(cli.TypesCmd())
	rootCmd.AddCommand(cli.ConfigCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
