package waybar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScriptContent_Deterministic verifies that script generation has no
// inputs: two invocations produce byte-identical output.
func TestScriptContent_Deterministic(t *testing.T) {
	assert.Equal(t, ScriptContent(), ScriptContent())
}

// TestScriptContent_Shape verifies the fixed template: shebang, interface
// name, both icon glyphs in their JSON status records, and the toggle
// branches through wg-quick.
func TestScriptContent_Shape(t *testing.T) {
	script := string(ScriptContent())

	assert.True(t, len(script) > 0 && script[0] == '#')
	assert.Contains(t, script, "#!/bin/bash")
	assert.Contains(t, script, `INTERFACE="home"`)
	assert.Contains(t, script, `ip link show "$INTERFACE"`)
	assert.Contains(t, script, `sudo wg-quick down "$INTERFACE"`)
	assert.Contains(t, script, `sudo wg-quick up "$INTERFACE"`)
	assert.Contains(t, script, `"class": "connected"`)
	assert.Contains(t, script, `"class": "disconnected"`)
	assert.Contains(t, script, IconLock)
	assert.Contains(t, script, IconLockOpen)
}

// TestIconCodepoints pins the two Nerd Font glyphs to their verified
// codepoints (nf-md-lock and nf-md-lock_open_outline).
func TestIconCodepoints(t *testing.T) {
	assert.Equal(t, rune(0xF033E), []rune(IconLock)[0])
	assert.Equal(t, rune(0xF0FC6), []rune(IconLockOpen)[0])
}

// TestEnsureScript_CreatesAndMarksExecutable verifies the first run:
// parent directory created on demand, content written, and execute bits
// added for owner, group, and others.
func TestEnsureScript_CreatesAndMarksExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scripts", "vpn-toggle.sh")

	result, err := EnsureScript(path)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.Contains(t, result.Notes, "made executable")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ScriptContent(), content)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o111), info.Mode().Perm()&0o111,
		"execute bit must be set for owner, group, and others")
}

// TestEnsureScript_Idempotent verifies the byte-compare no-op: a second
// run writes nothing and reports no change.
func TestEnsureScript_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scripts", "vpn-toggle.sh")

	first, err := EnsureScript(path)
	require.NoError(t, err)
	require.True(t, first.Changed)

	second, err := EnsureScript(path)
	require.NoError(t, err)
	assert.False(t, second.Changed)
	assert.Empty(t, second.Notes)
}

// TestEnsureScript_PreservesExtraBits verifies that chmod only ADDS the
// execute bits: a pre-existing file with unusual permissions keeps them
// when its content is refreshed.
func TestEnsureScript_PreservesExtraBits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vpn-toggle.sh")
	require.NoError(t, os.WriteFile(path, []byte("outdated"), 0o600))

	result, err := EnsureScript(path)
	require.NoError(t, err)
	assert.True(t, result.Changed)

	info, err := os.Stat(path)
	require.NoError(t, err)
	// 0600 plus the three execute bits.
	assert.Equal(t, os.FileMode(0o711), info.Mode().Perm())
}

// TestScriptUpToDate verifies the shared comparison helper.
func TestScriptUpToDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vpn-toggle.sh")
	assert.False(t, ScriptUpToDate(path), "missing file is not up to date")

	require.NoError(t, os.WriteFile(path, ScriptContent(), 0o755))
	assert.True(t, ScriptUpToDate(path))

	require.NoError(t, os.WriteFile(path, []byte("something else"), 0o755))
	assert.False(t, ScriptUpToDate(path))
}
