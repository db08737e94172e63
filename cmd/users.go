package cmd

import (
	"context"
	"fmt"

	"shortage-tracker/feature/users"
	"shortage-tracker/feature/users/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var userRole string

// usersCmd is the parent command for account management.
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
	Long:  `Create, list and remove user accounts. Passwords are stored as bcrypt hashes.`,
}

var usersAddCmd = &cobra.Command{
	Use:   "add <username> <password>",
	Short: "Create a user account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newCliEnv()
		if err != nil {
			return err
		}

		svc := users.NewService(env.db, env.logger)
		user, err := svc.Create(context.Background(), args[0], args[1], models.Role(userRole))
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		env.logger.Info("User created",
			zap.String("username", user.Username),
			zap.String("role", string(user.Role)),
		)
		return nil
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user accounts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newCliEnv()
		if err != nil {
			return err
		}

		svc := users.NewService(env.db, env.logger)
		list, err := svc.List(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}

		for _, u := range list {
			env.logger.Info("User",
				zap.String("username", u.Username),
				zap.String("role", string(u.Role)),
			)
		}
		return nil
	},
}

var usersRemoveCmd = &cobra.Command{
	Use:   "remove <username>",
	Short: "Remove a user account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newCliEnv()
		if err != nil {
			return err
		}

		svc := users.NewService(env.db, env.logger)
		if err := svc.Delete(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to remove user: %w", err)
		}
		return nil
	},
}

var usersPasswdCmd = &cobra.Command{
	Use:   "passwd <username> <password>",
	Short: "Reset a user's password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newCliEnv()
		if err != nil {
			return err
		}

		svc := users.NewService(env.db, env.logger)
		if err := svc.SetPassword(context.Background(), args[0], args[1]); err != nil {
			return fmt.Errorf("failed to set password: %w", err)
		}

		env.logger.Info("Password updated", zap.String("username", args[0]))
		return nil
	},
}

func init() {
	usersAddCmd.Flags().StringVar(&userRole, "role", string(models.RoleUser), "Account role: admin, user or reader")

	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersRemoveCmd)
	usersCmd.AddCommand(usersPasswdCmd)
	RootCmd.AddCommand(usersCmd)
}
