// Package cli — apply.go implements the "waybar-vpn apply" command.
//
// The apply command is the primary user-facing operation. It runs the
// three idempotent patch operations in a fixed order against the
// hardcoded paths under ~/.config/waybar:
//
//  1. Module registration in config.jsonc
//  2. Stylesheet append in style.css
//  3. Script materialization at scripts/vpn-toggle.sh
//
// Each operation commits as soon as its write completes; a fatal error
// aborts the run without rolling back earlier operations. There are no
// flags to relocate the target files.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/waybar-vpn/internal/model"
	"github.com/mmr-tortoise/waybar-vpn/internal/waybar"
)

// NewApplyCommand creates the "apply" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply",
		Short: "Patch the Waybar config files for VPN toggle support",
		Long: `Patch the Waybar configuration to add the VPN toggle widget.

Files that are already configured are skipped; files that need changes
are backed up to a .bak sibling first. Run it as often as you like —
a second run reports "no changes" for everything.

Examples:
  waybar-vpn apply
  waybar-vpn apply --json`,

		Args: cobra.NoArgs,

		// RunE is used instead of Run so we can return errors. Cobra will
		// pass them to the Execute error handler in root.go.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply()
		},
	}
}

// runApply is the main orchestration function for the apply command.
func runApply() error {
	paths, err := model.DefaultPaths()
	if err != nil {
		return err
	}
	VerboseLog("Config: %s", paths.Config)
	VerboseLog("Style: %s", paths.Style)
	VerboseLog("Script: %s", paths.Script)

	if !jsonOutput {
		fmt.Println("Fixing waybar config for VPN toggle support...")
	}

	results, applyErr := waybar.ApplyAll(paths)

	if jsonOutput {
		return outputApplyJSON(results, applyErr)
	}

	for _, result := range results {
		printResult(result)
	}
	if applyErr != nil {
		// The error propagates to Execute, which prints the diagnostic
		// and exits with the error's own code.
		return applyErr
	}

	fmt.Println()
	if anyChanged(results) {
		successColor.Println("Done! Restart waybar to apply changes:")
		fmt.Println("  killall waybar && waybar &")
	} else {
		infoColor.Println("Nothing to do - all files already configured.")
	}
	return nil
}

// printResult prints the human-readable outcome of one patch operation.
func printResult(result model.PatchResult) {
	name := filepath.Base(result.Target)
	fmt.Println()
	if !result.Changed {
		fmt.Printf("%s: Already configured, skipping\n", name)
		return
	}
	if result.BackupPath != "" {
		fmt.Printf("Backed up: %s -> %s\n", result.Target, result.BackupPath)
	}
	successColor.Printf("Modified: %s\n", result.Target)
	for _, note := range result.Notes {
		fmt.Printf("  - %s\n", note)
	}
}

// anyChanged reports whether any of the patch operations wrote a file.
func anyChanged(results []model.PatchResult) bool {
	for _, result := range results {
		if result.Changed {
			return true
		}
	}
	return false
}

// outputApplyJSON emits the machine-readable apply report. When the run
// failed part-way, the results of already-committed operations are still
// included before the error is propagated for exit-code handling.
func outputApplyJSON(results []model.PatchResult, applyErr error) error {
	report := map[string]interface{}{
		"results": results,
		"changed": anyChanged(results),
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "failed to encode JSON output", err)
	}
	return applyErr
}
