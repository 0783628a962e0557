// @title Spacebook API
// @version 1.0
// @description Reservation backend for shared institutional spaces.
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/spacebook/spacebook/internal/interfaces/cli/migrate"
	"github.com/spacebook/spacebook/internal/interfaces/cli/policy"
	"github.com/spacebook/spacebook/internal/interfaces/cli/seed"
	"github.com/spacebook/spacebook/internal/interfaces/cli/server"
	"github.com/spacebook/spacebook/internal/interfaces/cli/user"
	"github.com/spacebook/spacebook/internal/interfaces/cli/worker"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "spacebook",
		Short:        "Spacebook - reservations for shared spaces",
		Long:         `Spacebook books classrooms, labs and auditoriums: HTTP API, reminder worker, migrations and seeding.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		worker.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		user.NewCommand(),
		policy.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
