package waybar

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/waybar-vpn/internal/model"
)

// TestEnsureStyle_Appends verifies the first run: the rule is appended at
// the end of the file, existing rules are untouched, and a backup of the
// original content is taken.
func TestEnsureStyle_Appends(t *testing.T) {
	original := "window#waybar {\n  background: transparent;\n}\n"
	path := filepath.Join(t.TempDir(), "style.css")
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	result, err := EnsureStyle(path)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.Equal(t, path+".bak", result.BackupPath)
	assert.Equal(t, []string{"appended #custom-vpn styling"}, result.Notes)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), original),
		"existing rules must be preserved; the new rule is append-only")
	assert.Contains(t, string(content), "#custom-vpn {")
	assert.Contains(t, string(content), "min-width: 12px;")
	assert.Contains(t, string(content), "margin-left: 7.5px;")
	assert.Contains(t, string(content), "margin-right: 17px;")

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, original, string(backup), "backup must hold the pre-mutation bytes")
}

// TestEnsureStyle_AlreadyConfigured verifies the idempotency check: any
// occurrence of the selector (even a user's own styling) means no write
// and no backup.
func TestEnsureStyle_AlreadyConfigured(t *testing.T) {
	original := "#custom-vpn {\n  color: red;\n}\n"
	path := filepath.Join(t.TempDir(), "style.css")
	require.NoError(t, os.WriteFile(path, []byte(original), 0o644))

	result, err := EnsureStyle(path)
	require.NoError(t, err)

	assert.False(t, result.Changed)
	assert.Empty(t, result.BackupPath)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(content), "zero bytes must be written on a no-op")

	_, err = os.Stat(path + ".bak")
	assert.True(t, os.IsNotExist(err), "no backup may be created on a no-op")
}

// TestEnsureStyle_MissingFile verifies the fatal missing-file path.
func TestEnsureStyle_MissingFile(t *testing.T) {
	_, err := EnsureStyle(filepath.Join(t.TempDir(), "style.css"))
	requireCLICode(t, err, model.ExitMissingFile)
}
