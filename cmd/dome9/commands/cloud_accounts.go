package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// NewCloudAccountsCommand creates the cloud-accounts command group.
func NewCloudAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cloud-accounts",
		Aliases: []string{"cloud-account", "accounts", "ca"},
		Short:   "Manage cloud accounts",
		Long:    "List, inspect, and onboard cloud accounts",
	}

	cmd.AddCommand(newCloudAccountsListCommand())
	cmd.AddCommand(newCloudAccountsGetCommand())
	cmd.AddCommand(newCloudAccountsRegionsCommand())
	cmd.AddCommand(newCloudAccountsOnboardAWSCommand())
	cmd.AddCommand(newCloudAccountsSyncCommand())
	cmd.AddCommand(newCloudAccountsFetchStatusCommand())
	cmd.AddCommand(newCloudAccountsSetOrgUnitCommand())

	return cmd
}

func newCloudAccountsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cloud accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			accounts, err := client.CloudAccounts().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list cloud accounts: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(accounts)
			case OutputFormatYAML:
				return renderYAML(accounts)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Vendor", "External ID", "Full Protection")

				for _, account := range accounts {
					_ = table.Append(account.ID, truncate(account.Name), account.Vendor,
						account.ExternalAccountNumber, boolString(account.FullProtection))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newCloudAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ACCOUNT_ID",
		Short: "Get a cloud account",
		Long:  "Get a cloud account by Dome9 ID or AWS account number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			account, err := client.CloudAccounts().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get cloud account: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(account)
			case OutputFormatYAML:
				return renderYAML(account)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("ID", account.ID)
				_ = table.Append("Name", account.Name)
				_ = table.Append("Vendor", account.Vendor)
				_ = table.Append("External ID", account.ExternalAccountNumber)
				_ = table.Append("Full Protection", boolString(account.FullProtection))
				_ = table.Append("Allow Read Only", boolString(account.AllowReadOnly))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newCloudAccountsRegionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "regions ACCOUNT_ID",
		Short: "List the regions in use by a cloud account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			regions, err := client.CloudAccounts().Regions(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list regions: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(regions)
			case OutputFormatYAML:
				return renderYAML(regions)
			default:
				fmt.Println(strings.Join(regions, "\n"))
			}

			return nil
		},
	}
}

func newCloudAccountsOnboardAWSCommand() *cobra.Command {
	var (
		name           string
		arn            string
		secret         string
		fullProtection bool
		allowReadOnly  bool
	)

	cmd := &cobra.Command{
		Use:   "onboard-aws",
		Short: "Onboard an AWS account",
		Long:  "Register an AWS account with Dome9 using a cross-account role",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &dome9.OnboardAWSRequest{
				ARN:            arn,
				Secret:         secret,
				FullProtection: fullProtection,
				AllowReadOnly:  allowReadOnly,
			}
			if name != "" {
				request.Name = &name
			}

			err = client.CloudAccounts().OnboardAWS(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to onboard AWS account: %w", err)
			}

			fmt.Println("AWS account onboarded.")

			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name in Dome9")
	cmd.Flags().StringVar(&arn, "arn", "", "AWS role ARN to be assumed by Dome9")
	cmd.Flags().StringVar(&secret, "secret", "", "role external ID")
	cmd.Flags().BoolVar(&fullProtection, "full-protection", false, "enable tamper protection for imported security groups")
	cmd.Flags().BoolVar(&allowReadOnly, "allow-read-only", false, "operate in Manage mode instead of Readonly")
	_ = cmd.MarkFlagRequired("arn")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}

func newCloudAccountsSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync ACCOUNT_ID",
		Short: "Request an immediate account sync",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.CloudAccounts().SyncNow(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to request sync: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(result)
			case OutputFormatYAML:
				return renderYAML(result)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Workflow ID", result.WorkFlowID)
				_ = table.Append("Fetch Permissions", boolString(result.DefaultRegionHasFetchPermissions))
				_ = table.Append("Missing Permissions", truncate(strings.Join(result.MissingPermissions, ", ")))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newCloudAccountsFetchStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch-status ACCOUNT_ID",
		Short: "Show entity fetch freshness for a cloud account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			statuses, err := client.CloudAccounts().FetchStatus(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get fetch status: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(statuses)
			case OutputFormatYAML:
				return renderYAML(statuses)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Entity Type", "Region", "Last Successful Run")

				for _, status := range statuses {
					lastRun := NotAvailable
					if status.LastSuccessfulRun != nil {
						lastRun = status.LastSuccessfulRun.String()
					}
					_ = table.Append(status.EntityType, status.Region, lastRun)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newCloudAccountsSetOrgUnitCommand() *cobra.Command {
	var orgUnitID string

	cmd := &cobra.Command{
		Use:   "set-org-unit ACCOUNT_ID",
		Short: "Move a cloud account to an organizational unit",
		Long:  "Attach a cloud account to an organizational unit, or to the root unit when --org-unit-id is omitted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			var unitID *string
			if orgUnitID != "" {
				unitID = &orgUnitID
			}

			account, err := client.CloudAccounts().UpdateOrganizationalUnit(context.Background(), args[0], unitID)
			if err != nil {
				return fmt.Errorf("failed to update organizational unit: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(account)
			case OutputFormatYAML:
				return renderYAML(account)
			default:
				fmt.Printf("Cloud account %s moved.\n", account.ID)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&orgUnitID, "org-unit-id", "", "target organizational unit ID (omit for the root unit)")

	return cmd
}
