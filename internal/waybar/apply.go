// apply.go orchestrates the three idempotent patch operations. Each
// operation follows the same shape: check current state, and only if a
// change is needed, back up, compute the new text on the original bytes,
// and write it back.
//
// The operations commit independently and in a fixed order (config,
// stylesheet, script). A fatal error aborts the run immediately; writes
// that already completed stay in place — there is no cross-file rollback.
package waybar

import (
	"github.com/mmr-tortoise/waybar-vpn/internal/model"
)

// EnsureModuleRegistration patches the Waybar config document at the given
// path so that the VPN module is both listed in modules-right and defined
// as a top-level module object.
//
// When both conditions already hold, the file is untouched and no backup
// is created. Otherwise a .bak copy is taken and only the missing pieces
// are inserted into the raw text, preserving comments and formatting of
// everything else.
func EnsureModuleRegistration(path string) (model.PatchResult, error) {
	result := model.PatchResult{Target: path}

	config, err := LoadConfig(path)
	if err != nil {
		return result, err
	}

	// modules-right must exist as an array regardless of idempotency
	// state; a config without it cannot host the widget at all.
	modules, err := config.ModulesRight()
	if err != nil {
		return result, err
	}

	hasEntry := HasVPNInModules(modules)
	hasDefinition := config.HasVPNDefinition()
	if hasEntry && hasDefinition {
		return result, nil
	}

	backupPath, err := BackupFile(path)
	if err != nil {
		return result, err
	}
	result.BackupPath = backupPath

	content := config.Raw

	if !hasEntry {
		content, err = InsertModuleEntry(content)
		if err != nil {
			return result, err
		}
		result.Notes = append(result.Notes, "added 'custom/vpn' to modules-right")
	}

	if !hasDefinition {
		content, err = InsertModuleDefinition(content)
		if err != nil {
			return result, err
		}
		result.Notes = append(result.Notes, "added custom/vpn module definition")
	}

	if err := writeFilePreservingMode(path, content); err != nil {
		return result, err
	}

	result.Changed = true
	return result, nil
}

// ApplyAll runs the three patch operations against the given target paths
// and returns one PatchResult per operation, in execution order.
//
// The first fatal error stops the sequence; results for operations that
// already committed are returned alongside the error so the caller can
// report partial progress.
func ApplyAll(paths model.Paths) ([]model.PatchResult, error) {
	var results []model.PatchResult

	configResult, err := EnsureModuleRegistration(paths.Config)
	results = append(results, configResult)
	if err != nil {
		return results, err
	}

	styleResult, err := EnsureStyle(paths.Style)
	results = append(results, styleResult)
	if err != nil {
		return results, err
	}

	scriptResult, err := EnsureScript(paths.Script)
	results = append(results, scriptResult)
	if err != nil {
		return results, err
	}

	return results, nil
}
