package model

import (
	"fmt"
	"os"
	"path/filepath"
)

// ExitCode defines the CLI exit codes. Each fatal error kind maps to its
// own code so scripts and CI systems can programmatically determine why
// a run failed.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully,
	// whether or not any file was modified.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitMissingFile indicates an expected target file does not exist.
	ExitMissingFile ExitCode = 2

	// ExitMalformedConfig indicates the config document failed to decode
	// even after comment stripping and trailing-comma removal.
	ExitMalformedConfig ExitCode = 3

	// ExitMissingField indicates a required key is absent from the config
	// or has the wrong shape (e.g. modules-right is not an array).
	ExitMissingField ExitCode = 4

	// ExitAnchorNotFound indicates no insertion anchor could be located
	// in the raw document text.
	ExitAnchorNotFound ExitCode = 5
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
// This follows Go's error wrapping convention introduced in Go 1.13.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}

// PatchResult records the outcome of one idempotent patch operation.
// Exactly one result is produced per target file per run.
type PatchResult struct {
	// Target is the absolute path of the file the operation manages.
	Target string `json:"target"`

	// Changed reports whether the file was written during this run.
	// False means the idempotency conditions were already satisfied
	// and zero bytes were written.
	Changed bool `json:"changed"`

	// BackupPath is the sibling .bak copy created before mutation.
	// Empty when Changed is false (no backup is taken for a no-op) and
	// for the toggle script, which is generated rather than edited.
	BackupPath string `json:"backupPath,omitempty"`

	// Notes lists the individual sub-changes applied, in order
	// (e.g. "added 'custom/vpn' to modules-right").
	Notes []string `json:"notes,omitempty"`
}

// Paths holds the three target files the patcher manages. All three live
// under the user's Waybar config directory; there are no flags or
// environment variables to relocate them.
type Paths struct {
	// Config is the primary Waybar configuration document (JSONC).
	Config string `json:"config"`

	// Style is the Waybar stylesheet.
	Style string `json:"style"`

	// Script is the VPN toggle script materialized by the patcher.
	// Its parent directory is created on demand.
	Script string `json:"script"`
}

// DefaultPaths resolves the fixed home-relative target paths.
// Returns an error if the user's home directory cannot be determined.
func DefaultPaths() (Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, WrapCLIError(ExitGeneralError, "cannot determine home directory", err)
	}
	waybarDir := filepath.Join(home, ".config", "waybar")
	return Paths{
		Config: filepath.Join(waybarDir, "config.jsonc"),
		Style:  filepath.Join(waybarDir, "style.css"),
		Script: filepath.Join(waybarDir, "scripts", "vpn-toggle.sh"),
	}, nil
}
