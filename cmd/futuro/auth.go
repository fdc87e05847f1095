package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/meufuturo/futuro/internal/api"
	"github.com/meufuturo/futuro/internal/cli"
)

func loginCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Save an API token",
		Long: `Store the API access token used to authenticate requests.

Pass the token with --token or paste it when prompted. Obtain one from
the MeuFuturo web application under account settings.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tokens, err := api.NewTokenStore()
			if err != nil {
				return fmt.Errorf("failed to open token store: %w", err)
			}

			if token == "" {
				reader := cli.NewReader(os.Stdin)
				fmt.Print("Token: ")
				if token, err = reader.ReadLine(cmd.Context()); err != nil {
					return err
				}
			}
			if token == "" {
				return fmt.Errorf("token cannot be empty")
			}

			if err := tokens.Save(token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Token saved"))
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "API access token")

	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved API token",
		RunE: func(_ *cobra.Command, _ []string) error {
			tokens, err := api.NewTokenStore()
			if err != nil {
				return fmt.Errorf("failed to open token store: %w", err)
			}

			if err := tokens.Clear(); err != nil {
				return fmt.Errorf("failed to clear token: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("✓ Token cleared"))
			return nil
		},
	}
}
