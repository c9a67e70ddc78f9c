// Package token issues access tokens for local development and operators.
// In production tokens come from the identity service sharing the JWT secret.
package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsaberwal/serunner/internal/infrastructure/auth"
	"github.com/hsaberwal/serunner/internal/infrastructure/config"
	"github.com/hsaberwal/serunner/internal/shared/authorization"
	"github.com/hsaberwal/serunner/internal/shared/constants"
)

var (
	env        string
	configPath string
	userID     string
	role       string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token",
		Long:  `Sign an access token for the given user ID and role with the configured JWT secret.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&userID, "user", "u", "", "User ID to embed in the token (required)")
	cmd.Flags().StringVarP(&role, "role", "r", string(authorization.RoleUser), "Role to embed in the token (user, admin)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	r, err := authorization.ParseStrictRole(role)
	if err != nil {
		return err
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	signed, err := svc.Generate(userID, r)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), signed)
	return nil
}
