package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artem13815/recruitment/pkg/auth"
	pgrepo "github.com/artem13815/recruitment/pkg/repository/postgres"
)

var createUserCmd = &cobra.Command{
	Use:     "create-admin",
	Aliases: []string{"create-user"},
	Short:   "Create a back-office account",
	Long:    "Creates an active account. There is no self-service registration, so every account is provisioned here.",
	RunE:    runCreateUser,
}

var (
	createUserEmail    string
	createUserPassword string
	createUserRole     string
)

func init() {
	createUserCmd.Flags().StringVarP(&createUserEmail, "email", "e", "", "Account email (required)")
	createUserCmd.Flags().StringVarP(&createUserPassword, "password", "p", "", "Password, at least 8 characters (required)")
	createUserCmd.Flags().StringVarP(&createUserRole, "role", "r", string(auth.RoleAdmin), "ADMIN, HR_MANAGER, RECRUITER, TEAM_MANAGER or EMPLOYEE")

	for _, f := range []string{"email", "password"} {
		if err := createUserCmd.MarkFlagRequired(f); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", f, err))
		}
	}
	rootCmd.AddCommand(createUserCmd)
}

func runCreateUser(cmd *cobra.Command, _ []string) error {
	role, err := auth.ParseRole(createUserRole)
	if err != nil {
		return err
	}
	pool, _, err := openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer pool.Close()

	// tokens are not issued here
	svc := auth.NewAuthService(pgrepo.NewUserRepository(pool), nil)
	u, err := svc.CreateUser(cmd.Context(), createUserEmail, createUserPassword, role)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s %s (%s)\n", u.Role, u.Email, u.ID)
	return nil
}
