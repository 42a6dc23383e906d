package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/qanda"
	"github.com/aretw0/qanda/pkg/core"
)

var (
	registerUsername string
	registerEmail    string
)

// registerCmd creates a user account without entering the session loop.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user",
	Long:  `Register creates a user record in users.yaml. The password is prompted twice without echo.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if registerUsername == "" {
			fmt.Println("Error: --username is required")
			cmd.Usage()
			os.Exit(1)
		}

		password, err := getPassword("New password", os.Stdout)
		if err != nil {
			fatal("Failed to read password", err)
		}
		confirm, err := getPassword("Confirm password", os.Stdout)
		if err != nil {
			fatal("Failed to read password", err)
		}
		if password != confirm {
			fmt.Println("Passwords don't match!")
			os.Exit(1)
		}

		svc, err := qanda.Open(dataDir,
			qanda.WithLogger(slog.Default()),
			qanda.WithWatching(false),
		)
		if err != nil {
			fatal("Failed to open knowledge base", err)
		}

		switch err := svc.Register(cmd.Context(), registerUsername, password, registerEmail); {
		case errors.Is(err, core.ErrUserExists):
			fmt.Println("Username already exists")
			os.Exit(1)
		case errors.Is(err, core.ErrPasswordTooShort):
			fmt.Printf("Password must be at least %d characters\n", core.MinPasswordLen)
			os.Exit(1)
		case err != nil:
			fatal("Registration failed", err)
		}

		fmt.Printf("User '%s' registered.\n", registerUsername)
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "Username to register")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address (optional)")
	registerCmd.MarkFlagRequired("username")
}
