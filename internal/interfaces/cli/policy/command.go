// Package policy edits the role policies stored in casbin_rule.
package policy

import (
	"fmt"

	"github.com/spf13/cobra"

	permissionApp "github.com/spacebook/spacebook/internal/application/permission"
	"github.com/spacebook/spacebook/internal/infrastructure/database"
	"github.com/spacebook/spacebook/internal/infrastructure/permission"
	"github.com/spacebook/spacebook/internal/interfaces/cli/bootstrap"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Grant, revoke or check role permissions",
	}
	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "grant <role> <resource> <action>",
			Short: "Allow a role to perform an action on a resource",
			Args:  cobra.ExactArgs(3),
			RunE: withService(func(cmd *cobra.Command, svc *permissionApp.Service, args []string) error {
				return svc.GrantPermission(args[0], args[1], args[2])
			}),
		},
		&cobra.Command{
			Use:   "revoke <role> <resource> <action>",
			Short: "Remove a previously granted permission",
			Args:  cobra.ExactArgs(3),
			RunE: withService(func(cmd *cobra.Command, svc *permissionApp.Service, args []string) error {
				return svc.RevokePermission(args[0], args[1], args[2])
			}),
		},
		&cobra.Command{
			Use:   "check <role> <resource> <action>",
			Short: "Print whether a role may perform an action",
			Args:  cobra.ExactArgs(3),
			RunE: withService(func(cmd *cobra.Command, svc *permissionApp.Service, args []string) error {
				allowed, err := svc.CheckPermission(args[0], args[1], args[2])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s: %t\n", args[0], args[2], args[1], allowed)
				return nil
			}),
		},
	)
	return cmd
}

type serviceFunc func(cmd *cobra.Command, svc *permissionApp.Service, args []string) error

func withService(fn serviceFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		_, log, err := bootstrap.InitWithDatabase(env)
		if err != nil {
			return err
		}
		defer database.Close()

		enforcer, err := permission.NewEnforcer(database.Get(), log)
		if err != nil {
			return err
		}
		return fn(cmd, permissionApp.NewService(enforcer, log), args)
	}
}
