package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dome9-io/dome9-client/internal/constants"
	"github.com/dome9-io/dome9-client/pkg/dome9"
	"github.com/dome9-io/dome9-client/pkg/dome9client"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// JSON formatting.
	defaultJSONIndent = "  "

	Yes    = "yes"
	No     = "no"
	Masked = "***"
)

// storedConfig is the shape of ~/.dome9/config.yml.
type storedConfig struct {
	APIKey    string `yaml:"api-key"`
	APISecret string `yaml:"api-secret"`
	BaseURL   string `yaml:"base-url,omitempty"`
	Output    string `yaml:"output,omitempty"`
}

// configFilePath returns the config file in use, or the default location.
func configFilePath() (string, error) {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		return cfgFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".dome9", "config.yml"), nil
}

// saveStoredConfig persists credentials to the config file.
func saveStoredConfig(config storedConfig) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// CreateClient builds a dome9.Client from the resolved configuration.
func CreateClient() (dome9.Client, error) {
	apiKey := viper.GetString("api-key")
	apiSecret := viper.GetString("api-secret")

	if apiKey == "" || apiSecret == "" {
		return nil, constants.ErrNotLoggedIn
	}

	config := &dome9.Config{
		APIKey:    apiKey,
		APISecret: apiSecret,
		BaseURL:   viper.GetString("base-url"),
	}

	client, err := dome9client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// renderJSON writes a value to stdout as indented JSON.
func renderJSON(value interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", defaultJSONIndent)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// renderYAML writes a value to stdout as YAML.
func renderYAML(value interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return encoder.Close()
}

// truncate shortens a value for table display.
func truncate(value string) string {
	if len(value) <= constants.MaxTableCellWidth {
		return value
	}

	return value[:constants.MaxTableCellWidth-3] + "..."
}

// boolString renders a bool as yes/no for table cells.
func boolString(value bool) string {
	if value {
		return Yes
	}

	return No
}
