// Package waybar implements the idempotent patch operations that add a
// VPN-status toggle widget to a user's Waybar setup.
//
// Three independent operations are managed, each committed on its own:
//
//   - Module registration: insert "custom/vpn" into the modules-right
//     array and add its module definition object in config.jsonc.
//   - Stylesheet append: add a fixed #custom-vpn rule to style.css.
//   - Script materialization: write the executable vpn-toggle.sh script.
//
// The config document is JSONC, parsed via the internal/jsonc normalizer
// for validation and inspection only. Mutations are targeted insertions
// into the ORIGINAL text, anchored on literal patterns — parsing to
// validate, patching the original text to mutate. Re-serializing the
// parsed structure would strip the user's comments and reformat the file,
// so it is never done.
//
// Every operation is idempotent: once applied, re-running leaves the
// target file byte-identical, creates no backup, and reports no change.
package waybar
