package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/dome9-io/dome9-client/pkg/dome9"
	"github.com/dome9-io/dome9-client/pkg/dome9client"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		apiKey    string
		apiSecret string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to Dome9",
		Long:  "Store a Dome9 API key and secret and verify them against the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("API key ID: ")
				apiKey, _ = reader.ReadString('\n')
				apiKey = strings.TrimSpace(apiKey)
			}

			if apiSecret == "" {
				fmt.Print("API secret: ")
				byteSecret, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read secret: %w", err)
				}
				apiSecret = string(byteSecret)
				fmt.Println()
			}

			config := &dome9.Config{
				APIKey:    apiKey,
				APISecret: apiSecret,
				BaseURL:   viper.GetString("base-url"),
			}

			client, err := dome9client.New(config)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the credentials with a cheap call before storing them.
			_, err = client.CloudAccounts().List(context.Background())
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			err = saveStoredConfig(storedConfig{
				APIKey:    apiKey,
				APISecret: apiSecret,
				BaseURL:   viper.GetString("base-url"),
			})
			if err != nil {
				return err
			}

			fmt.Println("Logged in.")

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "api-key", "", "Dome9 API key ID")
	cmd.Flags().StringVar(&apiSecret, "api-secret", "", "Dome9 API secret")

	return cmd
}
