// Package seed loads initial data into a fresh database.
package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	settingApp "github.com/spacebook/spacebook/internal/application/setting"
	"github.com/spacebook/spacebook/internal/infrastructure/database"
	"github.com/spacebook/spacebook/internal/infrastructure/permission"
	"github.com/spacebook/spacebook/internal/infrastructure/repository"
	"github.com/spacebook/spacebook/internal/interfaces/cli/bootstrap"
)

var (
	env       string
	file      string
	overwrite bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load initial data",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	settings := &cobra.Command{
		Use:   "settings",
		Short: "Load the configuraciones table from a YAML file",
		Long: `Load admission thresholds and reminder settings from a YAML file.
Existing keys are kept unless --overwrite is given.`,
		RunE: runSettings,
	}
	settings.Flags().StringVarP(&file, "file", "f", "configs/settings.yaml", "Seed file")
	settings.Flags().BoolVar(&overwrite, "overwrite", false, "Replace values of existing keys")

	policies := &cobra.Command{
		Use:   "policies",
		Short: "Install the default role policies",
		RunE:  runPolicies,
	}

	cmd.AddCommand(settings, policies)
	return cmd
}

func runSettings(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.InitWithDatabase(env)
	if err != nil {
		return err
	}
	defer database.Close()

	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	svc := settingApp.NewServiceDDD(repository.NewSettingRepository(database.Get(), log), log)
	result, err := svc.SeedSettings(cmd.Context(), f, overwrite)
	if err != nil {
		return err
	}

	log.Infow("settings seeded",
		"file", file,
		"created", result.Created,
		"updated", result.Updated,
		"skipped", result.Skipped)
	return nil
}

func runPolicies(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.InitWithDatabase(env)
	if err != nil {
		return err
	}
	defer database.Close()

	enforcer, err := permission.NewEnforcer(database.Get(), log)
	if err != nil {
		return err
	}
	added, err := enforcer.SeedDefaults()
	if err != nil {
		return err
	}

	log.Infow("default policies installed", "added", added)
	return nil
}
