// Package cli — check.go implements the "waybar-vpn check" command.
//
// The check command is a read-only status report: it evaluates the same
// idempotency conditions the apply command uses, but never writes, never
// backs up, and never needs an insertion anchor. It is useful before a
// first apply ("what would change?") and after one ("did it stick?").
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

// checkStatus describes the configured-state of one target file.
type checkStatus struct {
	// Target is the file the status refers to.
	Target string `json:"target"`

	// Configured reports whether the file already satisfies all of its
	// idempotency conditions (apply would skip it).
	Configured bool `json:"configured"`

	// Missing lists the conditions that are not yet satisfied.
	Missing []string `json:"missing,omitempty"`
}

// NewCheckCommand creates the "check" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report which Waybar files still need the VPN patch",
		Long: `Check the Waybar configuration without modifying anything.

Reports, per target file, whether the VPN toggle widget is already fully
configured and which pieces are missing otherwise.

Examples:
  waybar-vpn check
  waybar-vpn check --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}
}

// runCheck evaluates the three idempotency conditions and reports them.
func runCheck() error {
	paths, err := model.DefaultPaths()
	if err != nil {
		return err
	}

	configStatus, err := checkConfig(paths.Config)
	if err != nil {
		return err
	}

	styleStatus, err := checkStyle(paths.Style)
	if err != nil {
		return err
	}

	statuses := []checkStatus{
		configStatus,
		styleStatus,
		checkScript(paths.Script),
	}

	if jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(map[string]interface{}{"statuses": statuses}); err != nil {
			return model.WrapCLIError(model.ExitGeneralError, "failed to encode JSON output", err)
		}
		return nil
	}

	for _, status := range statuses {
		name := filepath.Base(status.Target)
		if status.Configured {
			successColor.Printf("%s: configured\n", name)
			continue
		}
		fmt.Printf("%s: needs patching\n", name)
		for _, missing := range status.Missing {
			fmt.Printf("  - %s\n", missing)
		}
	}
	return nil
}

// checkConfig inspects the config document. Missing-file, malformed
// document, and missing modules-right remain fatal here, exactly as they
// are for apply — check shares the error taxonomy, it only skips writes.
func checkConfig(path string) (checkStatus, error) {
	status := checkStatus{Target: path}

	config, err := waybar.LoadConfig(path)
	if err != nil {
		return status, err
	}
	modules, err := config.ModulesRight()
	if err != nil {
		return status, err
	}

	if !waybar.HasVPNInModules(modules) {
		status.Missing = append(status.Missing, "'custom/vpn' entry in modules-right")
	}
	if !config.HasVPNDefinition() {
		status.Missing = append(status.Missing, "custom/vpn module definition")
	}
	status.Configured = len(status.Missing) == 0
	return status, nil
}

// checkStyle inspects the stylesheet for the widget's selector.
func checkStyle(path string) (checkStatus, error) {
	status := checkStatus{Target: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return status, model.WrapCLIError(
				model.ExitMissingFile,
				fmt.Sprintf("style file not found: %s", path),
				err,
			)
		}
		return status, fmt.Errorf("failed to read style file %s: %w", path, err)
	}

	if !waybar.HasVPNStyle(data) {
		status.Missing = append(status.Missing, "#custom-vpn rule in stylesheet")
	}
	status.Configured = len(status.Missing) == 0
	return status, nil
}

// checkScript compares the on-disk toggle script against the generated
// content. A missing script is not fatal — apply creates it — so this
// check never errors.
func checkScript(path string) checkStatus {
	status := checkStatus{Target: path}

	if waybar.ScriptUpToDate(path) {
		status.Configured = true
		return status
	}
	status.Missing = append(status.Missing, "up-to-date executable vpn-toggle.sh")
	return status
}
