package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCloudTrailCommand creates the cloudtrail command group.
func NewCloudTrailCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cloudtrail",
		Short: "Inspect CloudTrail events",
	}

	cmd.AddCommand(newCloudTrailListCommand())

	return cmd
}

func newCloudTrailListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List collected CloudTrail events",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			events, err := client.CloudTrail().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list CloudTrail events: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(events)
			case OutputFormatYAML:
				return renderYAML(events)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Event", "Time", "User", "Source IP", "Region")

				for _, event := range events {
					eventTime := NotAvailable
					if event.EventTime != nil {
						eventTime = event.EventTime.String()
					}
					_ = table.Append(event.EventName, eventTime, event.UserName,
						event.SourceIPAddress, event.Region)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
