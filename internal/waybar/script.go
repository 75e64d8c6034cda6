// script.go materializes the VPN toggle script that the patched Waybar
// config executes.
//
// The script is a fixed template: two invocations of ScriptContent always
// produce byte-identical output, which is what makes the byte-compare
// idempotency check in EnsureScript sound.
package waybar

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mmr-tortoise/waybar-vpn/internal/model"
)

// Nerd Font icons for the two VPN states (verified codepoints).
const (
	// IconLock is nf-md-lock, shown while the VPN interface is up.
	IconLock = "\U000F033E"

	// IconLockOpen is nf-md-lock_open_outline, shown while it is down.
	IconLockOpen = "\U000F0FC6"
)

// ScriptContent returns the VPN toggle script.
//
// The script queries the WireGuard interface's link state via `ip link`.
// Without arguments it emits a single-line JSON status record for Waybar
// (icon text, tooltip, and a connected/disconnected class that the
// stylesheet can target). With a "toggle" argument it brings the interface
// down or up through wg-quick under sudo.
func ScriptContent() []byte {
	script := `#!/bin/bash
INTERFACE="home"

if ip link show "$INTERFACE" 2>/dev/null | grep -q "state UP"; then
    if [[ "$1" == "toggle" ]]; then
        sudo wg-quick down "$INTERFACE"
    else
        echo '{"text": "%s", "tooltip": "VPN: Connected", "class": "connected"}'
    fi
else
    if [[ "$1" == "toggle" ]]; then
        sudo wg-quick up "$INTERFACE"
    else
        echo '{"text": "%s", "tooltip": "VPN: Disconnected", "class": "disconnected"}'
    fi
fi
`
	return []byte(fmt.Sprintf(script, IconLock, IconLockOpen))
}

// ScriptUpToDate reports whether the file at path already holds the
// generated script content, byte for byte. This is the same comparison
// EnsureScript uses to decide whether to skip the write.
func ScriptUpToDate(path string) bool {
	existing, err := os.ReadFile(path)
	return err == nil && bytes.Equal(existing, ScriptContent())
}

// EnsureScript writes the VPN toggle script to the given path and marks it
// executable.
//
// Idempotency is a byte-for-byte comparison against the existing file: if
// the content already matches, nothing is written, permissions are not
// touched, and the result reports no change. Otherwise the parent
// directory is created if missing, the file is (over)written, and execute
// permission is added for owner, group, and others without removing any
// existing permission bits.
func EnsureScript(path string) (model.PatchResult, error) {
	result := model.PatchResult{Target: path}
	content := ScriptContent()

	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, content) {
		return result, nil
	}

	scriptsDir := filepath.Dir(path)
	if _, err := os.Stat(scriptsDir); os.IsNotExist(err) {
		// os.MkdirAll creates all missing parents, like `mkdir -p`.
		if err := os.MkdirAll(scriptsDir, 0o755); err != nil {
			return result, fmt.Errorf("failed to create directory %s: %w", scriptsDir, err)
		}
		result.Notes = append(result.Notes, fmt.Sprintf("created directory: %s", scriptsDir))
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return result, fmt.Errorf("failed to write script %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return result, fmt.Errorf("failed to stat script %s: %w", path, err)
	}
	// Add execute bits on top of whatever the file already has, mirroring
	// `chmod +x` rather than setting an absolute mode.
	if err := os.Chmod(path, info.Mode().Perm()|0o111); err != nil {
		return result, fmt.Errorf("failed to make script %s executable: %w", path, err)
	}

	result.Changed = true
	result.Notes = append(result.Notes, "made executable")
	return result, nil
}
