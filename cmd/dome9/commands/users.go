package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewUsersCommand creates the users command group.
func NewUsersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Manage users",
	}

	cmd.AddCommand(newUsersListCommand())

	return cmd
}

func newUsersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List console users",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			users, err := client.Users().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list users: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(users)
			case OutputFormatYAML:
				return renderYAML(users)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Email", "Owner", "Suspended")

				for _, user := range users {
					_ = table.Append(strconv.Itoa(user.ID), user.Name, user.Email,
						boolString(user.IsOwner), boolString(user.IsSuspended))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
