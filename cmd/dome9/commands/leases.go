package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// NewLeasesCommand creates the leases command group.
func NewLeasesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "leases",
		Aliases: []string{"lease"},
		Short:   "Manage access leases",
		Long:    "Acquire temporary network access leases on protected security groups",
	}

	cmd.AddCommand(newLeasesAcquireAWSCommand())

	return cmd
}

func newLeasesAcquireAWSCommand() *cobra.Command {
	var (
		cloudAccountID  string
		securityGroupID int
		ip              string
		portFrom        int
		portTo          int
		protocol        string
		duration        string
		region          string
		name            string
		user            string
	)

	cmd := &cobra.Command{
		Use:   "acquire-aws",
		Short: "Acquire an AWS access lease",
		Long:  "Open a temporary hole in a protected AWS security group",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &dome9.AcquireAWSLeaseRequest{
				CloudAccountID:  cloudAccountID,
				SecurityGroupID: securityGroupID,
				IP:              ip,
				PortFrom:        portFrom,
			}

			if cmd.Flags().Changed("port-to") {
				request.PortTo = &portTo
			}
			if protocol != "" {
				p := dome9.Protocol(protocol)
				request.Protocol = &p
			}
			if duration != "" {
				request.Duration = &duration
			}
			if region != "" {
				r := dome9.Region(region)
				request.Region = &r
			}
			if name != "" {
				request.Name = &name
			}
			if user != "" {
				request.User = &user
			}

			err = client.AccessLeases().AcquireAWS(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to acquire lease: %w", err)
			}

			fmt.Println("Lease acquired.")

			return nil
		},
	}

	cmd.Flags().StringVar(&cloudAccountID, "cloud-account-id", "", "Dome9 cloud account ID")
	cmd.Flags().IntVar(&securityGroupID, "security-group-id", 0, "Dome9 security group ID")
	cmd.Flags().StringVar(&ip, "ip", "", "source IPv4 address to allow")
	cmd.Flags().IntVar(&portFrom, "port-from", 0, "first port of the allowed range")
	cmd.Flags().IntVar(&portTo, "port-to", 0, "last port of the allowed range")
	cmd.Flags().StringVar(&protocol, "protocol", "", "protocol (ALL, TCP, UDP, ICMP, ICMPV6)")
	cmd.Flags().StringVar(&duration, "duration", "", "lease duration in [D.]H:M:S form")
	cmd.Flags().StringVar(&region, "region", "", "AWS region in underscore form (for example us_east_1)")
	cmd.Flags().StringVar(&name, "name", "", "lease name")
	cmd.Flags().StringVar(&user, "user", "", "email of the user the lease is created for")
	_ = cmd.MarkFlagRequired("cloud-account-id")
	_ = cmd.MarkFlagRequired("security-group-id")
	_ = cmd.MarkFlagRequired("ip")
	_ = cmd.MarkFlagRequired("port-from")

	return cmd
}
