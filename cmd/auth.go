package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/files-billing-cli/internal/application"
	"github.com/spf13/cobra"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the API token",
	}

	cmd.AddCommand(newAuthSetTokenCmd(app), newAuthClearCmd(app))

	return cmd
}

func newAuthSetTokenCmd(app *app) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "set-token",
		Short: "Store the API token used for billing requests",
		Long:  "Store the API token used for billing requests. Without --token the token is read from the first line of stdin.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("token") {
				read, err := readLine(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read token from stdin: %w", err)
				}
				token = read
			}

			if err := app.credentials.SetToken(cmd.Context(), application.SetTokenCommand{Token: token}); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "API token stored")
			return err
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "API token")

	return cmd
}

func newAuthClearCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored API token and cached billing state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.credentials.ClearToken(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "API token removed")
			return err
		},
	}
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
