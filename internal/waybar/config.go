// config.go handles loading and inspection of the Waybar config document.
//
// The config file is JSONC, so it is normalized via internal/jsonc before
// decoding with the standard encoding/json library. The parsed form is
// used read-only, to answer the two idempotency questions (is "custom/vpn"
// registered in modules-right, and does its module definition exist);
// actual edits operate on the raw bytes so comments and formatting of
// untouched regions are preserved byte-for-byte.
package waybar

import (
	"fmt"
	"os"

	"github.com/mmr-tortoise/waybar-vpn/internal/jsonc"
	"github.com/mmr-tortoise/waybar-vpn/internal/model"
)

// VPNModule is the Waybar module name the patcher registers. It appears
// both as an entry in the modules-right array and as a top-level key
// holding the module definition object.
const VPNModule = "custom/vpn"

// modulesRightKey is the top-level config key listing the right-hand
// status bar modules, in display order.
const modulesRightKey = "modules-right"

// Config pairs the raw bytes of a Waybar config document with its
// normalized, decoded form.
type Config struct {
	// Raw is the original file content. All mutations are computed
	// against these bytes, never against a re-serialization of Parsed.
	Raw []byte

	// Parsed is the decoded document, used for membership checks only.
	Parsed map[string]interface{}
}

// LoadConfig reads and parses the Waybar config document at the given
// path.
//
// Returns a CLIError with ExitMissingFile if the file does not exist, and
// ExitMalformedConfig if the document fails to decode even after JSONC
// normalization.
func LoadConfig(path string) (*Config, error) {
	// os.ReadFile handles the open-read-close lifecycle in a single call,
	// guaranteeing the handle is released even on a partial read error.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitMissingFile,
				fmt.Sprintf("config file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	parsed, err := jsonc.Parse(data)
	if err != nil {
		return nil, model.WrapCLIError(
			model.ExitMalformedConfig,
			fmt.Sprintf("failed to parse config file %s", path),
			err,
		)
	}

	return &Config{Raw: data, Parsed: parsed}, nil
}

// ModulesRight returns the modules-right array from the parsed config.
//
// Returns a CLIError with ExitMissingField if the key is absent or its
// value is not an array. Both cases are fatal: the patcher cannot place
// the VPN widget without a modules-right list to register it in.
func (c *Config) ModulesRight() ([]interface{}, error) {
	value, ok := c.Parsed[modulesRightKey]
	if !ok {
		return nil, model.NewCLIError(
			model.ExitMissingField,
			fmt.Sprintf("%q not found in config", modulesRightKey),
		)
	}
	modules, ok := value.([]interface{})
	if !ok {
		return nil, model.NewCLIError(
			model.ExitMissingField,
			fmt.Sprintf("%q is not an array", modulesRightKey),
		)
	}
	return modules, nil
}

// HasVPNInModules reports whether modules-right already contains the
// literal "custom/vpn" entry. The modules slice comes from ModulesRight.
func HasVPNInModules(modules []interface{}) bool {
	for _, m := range modules {
		if s, ok := m.(string); ok && s == VPNModule {
			return true
		}
	}
	return false
}

// HasVPNDefinition reports whether the config has a top-level "custom/vpn"
// key whose value is an object. A non-object value under that key does not
// count as a definition and will be superseded by a fresh insertion.
func (c *Config) HasVPNDefinition() bool {
	value, ok := c.Parsed[VPNModule]
	if !ok {
		return false
	}
	_, isObject := value.(map[string]interface{})
	return isObject
}
