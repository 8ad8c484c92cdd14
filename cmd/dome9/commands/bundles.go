package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dome9-io/dome9-client/internal/constants"
	"github.com/dome9-io/dome9-client/pkg/dome9"
)

// NewBundlesCommand creates the bundles command group.
func NewBundlesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bundles",
		Aliases: []string{"bundle", "compliance"},
		Short:   "Manage compliance bundles",
		Long:    "List and update compliance rule bundles and run assessments",
	}

	cmd.AddCommand(newBundlesListCommand())
	cmd.AddCommand(newBundlesUpdateCommand())
	cmd.AddCommand(newBundlesAssessCommand())

	return cmd
}

func newBundlesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List compliance bundles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			bundles, err := client.Compliance().ListBundles(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list bundles: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(bundles)
			case OutputFormatYAML:
				return renderYAML(bundles)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Vendor", "Template")

				for _, bundle := range bundles {
					_ = table.Append(strconv.Itoa(bundle.ID), truncate(bundle.Name),
						bundle.CloudVendor, boolString(bundle.IsTemplate))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

// readRulesFile loads and decodes a bundle rules file.
func readRulesFile(path string) ([]dome9.BundleRule, error) {
	if path == "" {
		return nil, constants.ErrRulesFileRequired
	}

	document, err := dome9.ReadJSONFile(path)
	if err != nil {
		return nil, err
	}

	rawRules, ok := document.([]interface{})
	if !ok {
		return nil, constants.ErrRulesFileNotArray
	}

	// Round-trip through JSON to get typed rules out of the generic document.
	data, err := json.Marshal(rawRules)
	if err != nil {
		return nil, fmt.Errorf("encoding rules: %w", err)
	}

	var rules []dome9.BundleRule

	err = json.Unmarshal(data, &rules)
	if err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}

	return rules, nil
}

func newBundlesUpdateCommand() *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:   "update BUNDLE_ID",
		Short: "Replace the rules of a bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundleID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing bundle ID: %w", err)
			}

			rules, err := readRulesFile(rulesFile)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			bundle, err := client.Compliance().UpdateBundle(context.Background(), &dome9.UpdateBundleRequest{
				BundleID: bundleID,
				Rules:    rules,
			})
			if err != nil {
				return fmt.Errorf("failed to update bundle: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(bundle)
			case OutputFormatYAML:
				return renderYAML(bundle)
			default:
				fmt.Printf("Bundle %d updated with %d rules.\n", bundle.ID, len(bundle.Rules))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&rulesFile, "rules-file", "", "JSON file with an array of rules")

	return cmd
}

func newBundlesAssessCommand() *cobra.Command {
	var (
		cloudAccountID string
		accountType    string
		region         string
	)

	cmd := &cobra.Command{
		Use:   "assess BUNDLE_ID",
		Short: "Run an assessment",
		Long:  "Run a compliance bundle against a cloud account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bundleID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing bundle ID: %w", err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &dome9.RunAssessmentRequest{
				BundleID:         bundleID,
				CloudAccountID:   cloudAccountID,
				CloudAccountType: dome9.CloudAccountType(accountType),
			}
			if region != "" {
				r := dome9.Region(region)
				request.Region = &r
			}

			result, err := client.Compliance().RunAssessment(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to run assessment: %w", err)
			}

			switch viper.GetString("output") {
			case OutputFormatJSON:
				return renderJSON(result)
			case OutputFormatYAML:
				return renderYAML(result)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Rule", "Severity", "Passed", "Non-Complying")

				for _, test := range result.Tests {
					_ = table.Append(truncate(test.Rule.Name), test.Rule.Severity,
						boolString(test.TestPassed), strconv.Itoa(test.NonComplyingCount))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				fmt.Printf("Assessment %d passed: %s\n", result.ID, boolString(result.AssessmentPassed))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&cloudAccountID, "cloud-account-id", "", "cloud account to assess")
	cmd.Flags().StringVar(&accountType, "account-type", "Aws", "cloud account type (Aws, Azure, Google)")
	cmd.Flags().StringVar(&region, "region", "", "restrict the assessment to one region")
	_ = cmd.MarkFlagRequired("cloud-account-id")

	return cmd
}
