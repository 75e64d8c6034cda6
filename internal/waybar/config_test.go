package waybar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/waybar-vpn/internal/model"
)

// writeTempConfig writes content to a fresh temp file and returns its path.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// requireCLICode asserts that err is a CLIError carrying the given code.
func requireCLICode(t *testing.T, err error, code model.ExitCode) {
	t.Helper()
	require.Error(t, err)
	cliErr, ok := err.(*model.CLIError)
	require.True(t, ok, "expected *model.CLIError, got %T: %v", err, err)
	assert.Equal(t, code, cliErr.Code)
}

// --- LoadConfig tests ---

// TestLoadConfig_ValidJSONC verifies that a comment-bearing config with
// trailing commas loads, and that the raw bytes are kept verbatim.
func TestLoadConfig_ValidJSONC(t *testing.T) {
	content := `{
  // bar placement
  "layer": "top",
  "modules-right": [
    "pulseaudio",
    "group/tray-expander",
  ],
}`
	path := writeTempConfig(t, content)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []byte(content), config.Raw, "raw bytes must be kept untouched")
	assert.Equal(t, "top", config.Parsed["layer"])

	modules, err := config.ModulesRight()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"pulseaudio", "group/tray-expander"}, modules)
}

// TestLoadConfig_MissingFile verifies the fatal missing-file error path.
func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.jsonc"))
	requireCLICode(t, err, model.ExitMissingFile)
}

// TestLoadConfig_Malformed verifies that a document that still fails to
// decode after normalization is reported as malformed, not as a comment
// problem.
func TestLoadConfig_Malformed(t *testing.T) {
	path := writeTempConfig(t, `{"layer": "top" "height": 30}`)
	_, err := LoadConfig(path)
	requireCLICode(t, err, model.ExitMalformedConfig)
}

// --- ModulesRight tests ---

// TestModulesRight_MissingOrWrongShape verifies that an absent key and a
// non-array value are both fatal missing-field conditions.
func TestModulesRight_MissingOrWrongShape(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "key absent", content: `{"layer": "top"}`},
		{name: "value is a string", content: `{"modules-right": "tray"}`},
		{name: "value is an object", content: `{"modules-right": {"0": "tray"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(writeTempConfig(t, tt.content))
			require.NoError(t, err)

			_, err = config.ModulesRight()
			requireCLICode(t, err, model.ExitMissingField)
		})
	}
}

// --- idempotency inspection tests ---

// TestHasVPNInModules verifies the membership check for the literal
// "custom/vpn" entry.
func TestHasVPNInModules(t *testing.T) {
	assert.False(t, HasVPNInModules(nil))
	assert.False(t, HasVPNInModules([]interface{}{"tray", "clock"}))
	assert.True(t, HasVPNInModules([]interface{}{"tray", "custom/vpn"}))
	// Non-string entries must not match or panic.
	assert.False(t, HasVPNInModules([]interface{}{float64(1), true}))
}

// TestHasVPNDefinition verifies that only a top-level object under the
// "custom/vpn" key counts as a definition.
func TestHasVPNDefinition(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "definition present",
			content: `{"custom/vpn": {"interval": 5}}`,
			want:    true,
		},
		{
			name:    "key absent",
			content: `{"modules-right": []}`,
			want:    false,
		},
		{
			name:    "key present but not an object",
			content: `{"custom/vpn": "placeholder"}`,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := LoadConfig(writeTempConfig(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, config.HasVPNDefinition())
		})
	}
}
