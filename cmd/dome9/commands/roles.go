package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// NewRolesCommand creates the roles command group.
func NewRolesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "roles",
		Aliases: []string{"role"},
		Short:   "Manage roles",
		Long:    "List, inspect, and update Dome9 roles",
	}

	cmd.AddCommand(newRolesListCommand())
	cmd.AddCommand(newRolesGetCommand())
	cmd.AddCommand(newRolesUpdateCommand())

	return cmd
}

func newRolesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			roles, err := client.Roles().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list roles: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(roles)
			case OutputFormatYAML:
				return renderYAML(roles)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Description")

				for _, role := range roles {
					_ = table.Append(strconv.Itoa(role.ID), role.Name, truncate(role.Description))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newRolesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ROLE_ID",
		Short: "Get a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roleID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing role ID: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			role, err := client.Roles().Get(context.Background(), roleID)
			if err != nil {
				return fmt.Errorf("failed to get role: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(role)
			case OutputFormatYAML:
				return renderYAML(role)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", strconv.Itoa(role.ID))
				_ = table.Append("Name", role.Name)
				_ = table.Append("Description", truncate(role.Description))
				_ = table.Append("Access", truncate(strings.Join(role.Permissions.Access, ", ")))
				_ = table.Append("Manage", truncate(strings.Join(role.Permissions.Manage, ", ")))
				_ = table.Append("View", truncate(strings.Join(role.Permissions.View, ", ")))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newRolesUpdateCommand() *cobra.Command {
	var (
		name   string
		access []string
		manage []string
		create []string
		view   []string
	)

	cmd := &cobra.Command{
		Use:   "update ROLE_ID",
		Short: "Update a role",
		Long:  "Replace the name and permission lists of a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			roleID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing role ID: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Roles().Update(context.Background(), roleID, &dome9.UpdateRoleRequest{
				Name: name,
				Permissions: dome9.RolePermissions{
					Access: access,
					Manage: manage,
					Create: create,
					View:   view,
				},
			})
			if err != nil {
				return fmt.Errorf("failed to update role: %w", err)
			}

			fmt.Println("Role updated.")

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "role name")
	cmd.Flags().StringSliceVar(&access, "access", nil, "access permission SRLs")
	cmd.Flags().StringSliceVar(&manage, "manage", nil, "manage permission SRLs")
	cmd.Flags().StringSliceVar(&create, "create", nil, "create permission SRLs")
	cmd.Flags().StringSliceVar(&view, "view", nil, "view permission SRLs")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
