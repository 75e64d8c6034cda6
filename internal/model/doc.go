// Package model defines the domain types and value objects for the
// waybar-vpn CLI.
//
// This package contains pure data structures with no external dependencies.
// PatchResult and Paths are transient representations built up during a
// single run — there are no persistent state files beyond the .bak copies
// the patcher itself writes.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
// Every fatal condition (missing file, malformed config, missing field,
// missing anchor) has its own code; none of them are retried or recovered
// within a run.
package model
