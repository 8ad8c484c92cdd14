package dome9_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dome9-io/dome9-client/pkg/dome9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadJSONFile(t *testing.T) {
	t.Run("reads a document", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rules.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"name":"rule-1"}]`), 0600))

		value, err := dome9.ReadJSONFile(path)
		require.NoError(t, err)

		rules, ok := value.([]interface{})
		require.True(t, ok)
		require.Len(t, rules, 1)

		rule, ok := rules[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "rule-1", rule["name"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := dome9.ReadJSONFile(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"name":`), 0600))

		_, err := dome9.ReadJSONFile(path)
		require.Error(t, err)
	})
}
