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

// NewOrgUnitsCommand creates the org-units command group.
func NewOrgUnitsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "org-units",
		Aliases: []string{"org-unit", "ou"},
		Short:   "Manage organizational units",
	}

	cmd.AddCommand(newOrgUnitsListCommand())

	return cmd
}

func newOrgUnitsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List organizational units",
		Long:  "List the account grouping hierarchy as a flat list",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			units, err := client.OrganizationalUnits().ListFlat(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list organizational units: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(units)
			case OutputFormatYAML:
				return renderYAML(units)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Path", "Accounts", "Root")

				for _, unit := range units {
					_ = table.Append(unit.ID, unit.Name, truncate(unit.Path),
						strconv.Itoa(unit.AccountsCount), boolString(unit.IsRoot))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
