package roles

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"quickdesk/internal/domain/user"
	"quickdesk/internal/infrastructure/auth"
	"quickdesk/internal/infrastructure/config"
	"quickdesk/internal/infrastructure/database"
	"quickdesk/internal/infrastructure/repository"
	"quickdesk/internal/shared/authorization"
	"quickdesk/internal/shared/logger"
)

var (
	env      string
	name     string
	email    string
	password string
	role     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roles",
		Short: "Manage staff accounts",
		Long:  `Create admin and agent accounts, list accounts, and change an account's role without going through the API.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newCreateCommand("create-admin", authorization.RoleAdmin),
		newCreateCommand("create-agent", authorization.RoleAgent),
		newListCommand(),
		newPromoteCommand(),
	)

	return cmd
}

func newCreateCommand(use string, accountRole authorization.Role) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Create a new %s account", accountRole),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(ctx context.Context, userRepo *repository.UserRepository) error {
				if name == "" || email == "" || password == "" {
					return fmt.Errorf("--name, --email and --password are required")
				}

				cfg := config.Get()
				hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
				hash, err := hasher.Hash(password)
				if err != nil {
					return err
				}

				account, err := user.NewUser(name, email, hash, accountRole)
				if err != nil {
					return err
				}
				if err := userRepo.Save(ctx, account); err != nil {
					return err
				}

				fmt.Printf("created %s account %q (id %d)\n", accountRole, account.Name(), account.ID())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Account username")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-users",
		Short: "List all accounts with their roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(ctx context.Context, userRepo *repository.UserRepository) error {
				page := 1
				for {
					users, total, err := userRepo.List(ctx, page, 100)
					if err != nil {
						return err
					}
					for _, u := range users {
						state := "active"
						if !u.IsActive() {
							state = "disabled"
						}
						fmt.Printf("%-5d %-20s %-30s %-6s %s\n", u.ID(), u.Name(), u.Email(), u.Role(), state)
					}
					if int64(page*100) >= total {
						return nil
					}
					page++
				}
			})
		},
	}
}

func newPromoteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promote [username or email]",
		Short: "Change an account's role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(ctx context.Context, userRepo *repository.UserRepository) error {
				newRole := authorization.Role(role)
				if !newRole.IsValid() {
					return fmt.Errorf("invalid role %q: use user, agent or admin", role)
				}

				account, err := findAccount(ctx, userRepo, args[0])
				if err != nil {
					return err
				}
				if account == nil {
					return fmt.Errorf("no account matches %q", args[0])
				}

				if err := account.ChangeRole(newRole); err != nil {
					return err
				}
				if err := userRepo.Update(ctx, account); err != nil {
					return err
				}

				fmt.Printf("account %q is now %s\n", account.Name(), newRole)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "Target role (user, agent, admin)")

	return cmd
}

func findAccount(ctx context.Context, userRepo *repository.UserRepository, identifier string) (*user.User, error) {
	account, err := userRepo.GetByName(ctx, identifier)
	if err != nil || account != nil {
		return account, err
	}
	return userRepo.GetByEmail(ctx, identifier)
}

func withDatabase(fn func(ctx context.Context, userRepo *repository.UserRepository) error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	return fn(context.Background(), repository.NewUserRepository(database.Get()))
}
