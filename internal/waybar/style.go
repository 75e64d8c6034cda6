// style.go handles the stylesheet side of the patch: a fixed CSS rule for
// the VPN widget appended to the end of style.css.
package waybar

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mmr-tortoise/waybar-vpn/internal/model"
)

// vpnStyleSelector is the CSS selector Waybar derives from the
// "custom/vpn" module name. Its presence anywhere in the stylesheet is
// the idempotency signal — if the user has already styled the widget
// (even differently from our defaults), the file is left alone.
const vpnStyleSelector = "#custom-vpn"

// vpnStyleBlock is the rule appended for the VPN widget. The margins match
// the spacing of the neighbouring tray modules in the stock Omarchy theme.
const vpnStyleBlock = `
#custom-vpn {
  min-width: 12px;
  margin-left: 7.5px;
  margin-right: 17px;
}
`

// HasVPNStyle reports whether the stylesheet content already mentions the
// VPN widget's selector.
func HasVPNStyle(content []byte) bool {
	return bytes.Contains(content, []byte(vpnStyleSelector))
}

// EnsureStyle appends the VPN widget rule to the stylesheet at the given
// path unless the widget's selector already appears in the file.
//
// The rule is always appended at the end of the file, never inserted —
// appending is the one CSS edit that cannot disturb existing rules.
// A .bak copy is taken before the append.
//
// Returns a CLIError with ExitMissingFile if the stylesheet does not
// exist.
func EnsureStyle(path string) (model.PatchResult, error) {
	result := model.PatchResult{Target: path}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, model.WrapCLIError(
				model.ExitMissingFile,
				fmt.Sprintf("style file not found: %s", path),
				err,
			)
		}
		return result, fmt.Errorf("failed to read style file %s: %w", path, err)
	}

	if HasVPNStyle(content) {
		return result, nil
	}

	backupPath, err := BackupFile(path)
	if err != nil {
		return result, err
	}
	result.BackupPath = backupPath

	updated := append(content, []byte(vpnStyleBlock)...)
	if err := writeFilePreservingMode(path, updated); err != nil {
		return result, err
	}

	result.Changed = true
	result.Notes = append(result.Notes, "appended #custom-vpn styling")
	return result, nil
}
