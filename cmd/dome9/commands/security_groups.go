package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// NewSecurityGroupsCommand creates the security-groups command group.
func NewSecurityGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "security-groups",
		Aliases: []string{"security-group", "sg"},
		Short:   "Manage AWS security groups",
	}

	cmd.AddCommand(newSecurityGroupsListCommand())
	cmd.AddCommand(newSecurityGroupsProtectCommand())

	return cmd
}

func newSecurityGroupsListCommand() *cobra.Command {
	var (
		cloudAccountID string
		region         string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List security groups",
		Long:  "List all tracked security groups, or only those of one account region",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var (
				groups  []dome9.SecurityGroup
				listErr error
			)

			if cloudAccountID != "" {
				groups, listErr = client.SecurityGroups().ListForRegion(context.Background(),
					cloudAccountID, dome9.Region(region))
			} else {
				groups, listErr = client.SecurityGroups().List(context.Background())
			}

			if listErr != nil {
				return fmt.Errorf("failed to list security groups: %w", listErr)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(groups)
			case OutputFormatYAML:
				return renderYAML(groups)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Region", "VPC", "Protected")

				for _, group := range groups {
					_ = table.Append(strconv.Itoa(group.ID), truncate(group.Name),
						group.RegionID, group.VpcID, boolString(group.IsProtected))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&cloudAccountID, "cloud-account-id", "", "restrict to one cloud account")
	cmd.Flags().StringVar(&region, "region", "", "restrict to one region (requires --cloud-account-id)")

	return cmd
}

func newSecurityGroupsProtectCommand() *cobra.Command {
	var readOnly bool

	cmd := &cobra.Command{
		Use:   "protect SECURITY_GROUP_ID",
		Short: "Set the protection mode of a security group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			mode := dome9.ProtectionModeFullManage
			if readOnly {
				mode = dome9.ProtectionModeReadOnly
			}

			err = client.SecurityGroups().SetProtectionMode(context.Background(), args[0], mode)
			if err != nil {
				return fmt.Errorf("failed to set protection mode: %w", err)
			}

			fmt.Printf("Security group %s set to %s.\n", args[0], mode)

			return nil
		},
	}

	cmd.Flags().BoolVar(&readOnly, "read-only", false, "set ReadOnly instead of FullManage")

	return cmd
}
