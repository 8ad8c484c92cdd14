package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dome9-io/dome9-client/internal/constants"
)

func TestNewCloudAccountsCommand(t *testing.T) {
	cmd := NewCloudAccountsCommand()
	assert.Equal(t, "cloud-accounts", cmd.Use)
	assert.Contains(t, cmd.Aliases, "ca")

	// Check subcommands are added
	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 7)

	var commandNames []string
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "get")
	assert.Contains(t, commandNames, "onboard-aws")
	assert.Contains(t, commandNames, "sync")
	assert.Contains(t, commandNames, "set-org-unit")
}

func TestNewBundlesCommand(t *testing.T) {
	cmd := NewBundlesCommand()
	assert.Equal(t, "bundles", cmd.Use)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 3)

	var commandNames []string
	for _, subcmd := range subcommands {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "update")
	assert.Contains(t, commandNames, "assess")
}

func TestNewLeasesCommand(t *testing.T) {
	cmd := NewLeasesCommand()
	assert.Equal(t, "leases", cmd.Use)

	acquire := cmd.Commands()[0]
	assert.Equal(t, "acquire-aws", acquire.Name())
	assert.NotNil(t, acquire.Flags().Lookup("duration"))
	assert.NotNil(t, acquire.Flags().Lookup("port-from"))
}

func TestReadRulesFile(t *testing.T) {
	t.Run("missing path", func(t *testing.T) {
		_, err := readRulesFile("")
		require.ErrorIs(t, err, constants.ErrRulesFileRequired)
	})

	t.Run("not an array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":"r"}`), 0600))

		_, err := readRulesFile(path)
		require.ErrorIs(t, err, constants.ErrRulesFileNotArray)
	})

	t.Run("valid rules", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.json")
		content := `[{"name":"No public instances","severity":"High","logic":"Instance should not have publicIpAddress"}]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		rules, err := readRulesFile(path)
		require.NoError(t, err)
		require.Len(t, rules, 1)
		assert.Equal(t, "No public instances", rules[0].Name)
		assert.Equal(t, "High", rules[0].Severity)
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short"))

	long := make([]byte, constants.MaxTableCellWidth+10)
	for i := range long {
		long[i] = 'x'
	}

	truncated := truncate(string(long))
	assert.Len(t, truncated, constants.MaxTableCellWidth)
	assert.Contains(t, truncated, "...")
}

func TestBoolString(t *testing.T) {
	assert.Equal(t, Yes, boolString(true))
	assert.Equal(t, No, boolString(false))
}
