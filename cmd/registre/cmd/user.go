package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"registre/internal/domain/user"
	"registre/internal/infrastructure/storage/postgres"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account without going through the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		storage, err := postgres.New(cfg)
		if err != nil {
			return fmt.Errorf("init storage: %w", err)
		}
		defer storage.Close()

		var login, name, email string
		fmt.Print("Login: ")
		_, _ = fmt.Scanln(&login)
		fmt.Print("Name: ")
		_, _ = fmt.Scanln(&name)
		fmt.Print("Email: ")
		_, _ = fmt.Scanln(&email)

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		fmt.Print("Repeat password: ")
		passwordConfirm, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		fmt.Println()

		if string(password) != string(passwordConfirm) {
			return fmt.Errorf("passwords do not match")
		}

		service := user.NewService(postgres.NewUserRepository(storage.Pool(), log), log)
		id, err := service.Register(cmd.Context(), login, name, email, string(password))
		if err != nil {
			color.Red("Registration failed: %v", err)
			return err
		}

		color.Green("User %q created with id %d", login, id)
		return nil
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(userCmd)
}
