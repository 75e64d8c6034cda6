// patch.go computes the module-registration edits on the raw config text.
//
// The functions here are pure text-to-text transforms: they locate literal
// anchor patterns in the original document and splice in new text at those
// positions. Re-serializing the parsed structure instead would destroy the
// user's comments and formatting, so only targeted insertions are ever
// performed.
package waybar

import (
	"bytes"
	"regexp"

	"github.com/mmr-tortoise/waybar-vpn/internal/model"
)

// trayExpanderAnchorRe matches the preferred insertion anchor: the literal
// "group/tray-expander" entry followed by its comma. The new module entry
// goes immediately after that comma so the VPN widget lands next to the
// tray in the rendered bar.
var trayExpanderAnchorRe = regexp.MustCompile(`"group/tray-expander"\s*,`)

// modulesRightOpenRe matches the fallback anchor: the opening bracket of
// the modules-right array, including any whitespace that follows it.
var modulesRightOpenRe = regexp.MustCompile(`"modules-right"\s*:\s*\[\s*`)

// vpnModuleEntry is the array entry spliced into modules-right after the
// tray-expander anchor.
const vpnModuleEntry = "\n    \"custom/vpn\","

// vpnModuleDefinition is the top-level module definition inserted before
// the root object's closing brace. Waybar polls the exec script every 5
// seconds and re-runs it with a toggle argument on click; return-type
// "json" tells Waybar the script emits a structured status record.
const vpnModuleDefinition = `
  "custom/vpn": {
    "format": "{}",
    "return-type": "json",
    "exec": "~/.config/waybar/scripts/vpn-toggle.sh",
    "on-click": "~/.config/waybar/scripts/vpn-toggle.sh toggle",
    "interval": 5
  }`

// InsertModuleEntry splices a "custom/vpn" entry into the modules-right
// array of the raw config text.
//
// Anchor tiering, in priority order:
//  1. After the first `"group/tray-expander",` occurrence.
//  2. At the start of the modules-right array, right after its opening
//     bracket, when the tray-expander anchor is absent.
//
// If neither anchor is found the document cannot be patched safely and a
// CLIError with ExitAnchorNotFound is returned.
func InsertModuleEntry(raw []byte) ([]byte, error) {
	if loc := trayExpanderAnchorRe.FindIndex(raw); loc != nil {
		return spliceAt(raw, loc[1], []byte(vpnModuleEntry)), nil
	}

	if loc := modulesRightOpenRe.FindIndex(raw); loc != nil {
		return spliceAt(raw, loc[1], []byte("\"custom/vpn\",\n    ")), nil
	}

	return nil, model.NewCLIError(
		model.ExitAnchorNotFound,
		"could not find modules-right array in config",
	)
}

// InsertModuleDefinition splices the top-level "custom/vpn" definition
// object into the raw config text, immediately before the document's last
// closing brace (assumed to be the root object's).
//
// A leading comma is prepended unless the text preceding the closing brace
// already ends in a comma after trimming trailing whitespace — Waybar's
// JSONC tolerates trailing commas, so both shapes occur in the wild.
//
// Returns a CLIError with ExitAnchorNotFound if the document contains no
// closing brace at all.
func InsertModuleDefinition(raw []byte) ([]byte, error) {
	bracePos := bytes.LastIndexByte(raw, '}')
	if bracePos == -1 {
		return nil, model.NewCLIError(
			model.ExitAnchorNotFound,
			"could not find closing brace in config",
		)
	}

	definition := vpnModuleDefinition
	preceding := bytes.TrimRight(raw[:bracePos], " \t\r\n")
	if !bytes.HasSuffix(preceding, []byte(",")) {
		definition = "," + definition
	}

	return spliceAt(raw, bracePos, []byte(definition+"\n")), nil
}

// spliceAt returns a new byte slice with insert placed at position pos.
// The input slice is never modified in place; callers may retain it for
// backup purposes.
func spliceAt(raw []byte, pos int, insert []byte) []byte {
	result := make([]byte, 0, len(raw)+len(insert))
	result = append(result, raw[:pos]...)
	result = append(result, insert...)
	result = append(result, raw[pos:]...)
	return result
}
