// Package user manages directory entries and issues API tokens for them.
package user

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	userApp "github.com/spacebook/spacebook/internal/application/user"
	"github.com/spacebook/spacebook/internal/application/user/dto"
	"github.com/spacebook/spacebook/internal/infrastructure/auth"
	"github.com/spacebook/spacebook/internal/infrastructure/database"
	"github.com/spacebook/spacebook/internal/infrastructure/repository"
	"github.com/spacebook/spacebook/internal/interfaces/cli/bootstrap"
	"github.com/spacebook/spacebook/internal/shared/authorization"
)

var (
	env string

	createReq dto.CreateUserRequest

	userID   uint
	tokenTTL time.Duration
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage the user directory",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	create := &cobra.Command{
		Use:   "create",
		Short: "Register a user",
		RunE:  runCreate,
	}
	create.Flags().StringVar(&createReq.FirstName, "first-name", "", "First name (required)")
	create.Flags().StringVar(&createReq.LastName, "last-name", "", "Last name")
	create.Flags().StringVar(&createReq.Email, "email", "", "Email (required)")
	create.Flags().StringVar(&createReq.Role, "role", "user", "Role: admin, operator or user")
	create.Flags().StringVar(&createReq.UserType, "type", "", "Free-form user type, e.g. student or staff")
	_ = create.MarkFlagRequired("first-name")
	_ = create.MarkFlagRequired("email")

	token := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a user",
		Long:  `Issue a signed access token carrying the user's current role.`,
		RunE:  runToken,
	}
	token.Flags().UintVar(&userID, "id", 0, "User ID (required)")
	token.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Token lifetime")
	_ = token.MarkFlagRequired("id")

	cmd.AddCommand(create, token)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.InitWithDatabase(env)
	if err != nil {
		return err
	}
	defer database.Close()

	svc := userApp.NewServiceDDD(repository.NewUserRepository(database.Get(), log), log)
	resp, err := svc.CreateUser(cmd.Context(), createReq)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s, %s)\n", resp.ID, resp.Email, resp.Role)
	return nil
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, log, err := bootstrap.InitWithDatabase(env)
	if err != nil {
		return err
	}
	defer database.Close()

	svc := userApp.NewServiceDDD(repository.NewUserRepository(database.Get(), log), log)
	u, err := svc.GetUser(cmd.Context(), userID)
	if err != nil {
		return err
	}
	if !u.IsActive {
		return fmt.Errorf("user %d is inactive", userID)
	}

	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.Issuer)
	token, err := jwtSvc.Generate(u.ID, authorization.ParseUserRole(u.Role), tokenTTL)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
