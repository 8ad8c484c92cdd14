package commands

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dome9-io/dome9-client/internal/constants"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and modify the stored Dome9 CLI configuration",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := map[string]string{
				"api-key":  viper.GetString("api-key"),
				"base-url": viper.GetString("base-url"),
				"output":   viper.GetString("output"),
			}

			// The secret never leaves the config file.
			if viper.GetString("api-secret") != "" {
				settings["api-secret"] = Masked
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(settings)
			case OutputFormatYAML:
				return renderYAML(settings)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Key", "Value")

				for _, key := range []string{"api-key", "api-secret", "base-url", "output"} {
					value := settings[key]
					if value == "" {
						value = NotAvailable
					}
					_ = table.Append(key, value)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			switch key {
			case "api-key", "base-url", "output":
			case "api-secret":
				return constants.ErrSecretNotDisplayed
			default:
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			viper.Set(key, value)

			return saveStoredConfig(storedConfig{
				APIKey:    viper.GetString("api-key"),
				APISecret: viper.GetString("api-secret"),
				BaseURL:   viper.GetString("base-url"),
				Output:    viper.GetString("output"),
			})
		},
	}
}
