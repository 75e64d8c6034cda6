// Package jsonc normalizes JSONC (JSON with Comments) documents into strict
// JSON text.
//
// Waybar's config.jsonc supports // line comments, /* */ block comments,
// and trailing commas — the two JSONC extensions Waybar actually emits.
// A generic JSON decoder rejects such documents, and a pure-regex comment
// stripper would corrupt string values containing comment-like sequences
// (e.g. an exec path with "//" in it). Normalize therefore tracks string
// context explicitly with a character-by-character scan.
//
// The normalized text is used only to validate structure and inspect
// values. Edits to the config file always operate on the ORIGINAL bytes,
// so user comments and formatting survive untouched.
package jsonc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
)

// trailingCommaRe matches a comma that is followed, across whitespace only,
// by a closing bracket or brace. Strict JSON forbids trailing commas, so
// these are deleted after comment stripping. Unlike comment stripping this
// pass does not track string context; a string value containing ",]" or
// ",}" would be corrupted, but Waybar configs do not carry such values.
var trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)

// Normalize converts JSONC text into strict JSON text by stripping comments
// and removing trailing commas. The output is suitable for encoding/json.
//
// Comment stripping is a single left-to-right scan with two boolean flags
// (inString, escapeNext) and constant extra memory beyond the output
// buffer. Comment-looking sequences inside strings are preserved verbatim.
// An unterminated block comment silently consumes to end of input; that is
// documented behavior, not an error.
func Normalize(data []byte) []byte {
	stripped := stripComments(data)
	return trailingCommaRe.ReplaceAll(stripped, []byte("$1"))
}

// stripComments removes // line comments and /* */ block comments that
// occur outside of string literals.
func stripComments(data []byte) []byte {
	var result bytes.Buffer
	result.Grow(len(data))

	inString := false
	escapeNext := false

	for i := 0; i < len(data); {
		c := data[i]

		// An escaped character is copied verbatim. This guarantees \"
		// inside a string is never misread as the string terminator.
		if escapeNext {
			result.WriteByte(c)
			escapeNext = false
			i++
			continue
		}

		if c == '\\' && inString {
			result.WriteByte(c)
			escapeNext = true
			i++
			continue
		}

		if c == '"' {
			result.WriteByte(c)
			inString = !inString
			i++
			continue
		}

		// Inside a string everything is copied unconditionally, so "//"
		// and "/*" in string values survive normalization unchanged.
		if inString {
			result.WriteByte(c)
			i++
			continue
		}

		// Line comment: skip up to (but not including) the next line
		// terminator, emitting nothing. The newline itself is kept so
		// line-based formatting of the rest of the document survives.
		if c == '/' && i+1 < len(data) && data[i+1] == '/' {
			for i < len(data) && data[i] != '\n' {
				i++
			}
			continue
		}

		// Block comment: skip until and including the first */ that
		// follows. If the comment is unterminated the scan consumes the
		// rest of the input.
		if c == '/' && i+1 < len(data) && data[i+1] == '*' {
			i += 2
			for i+1 < len(data) && !(data[i] == '*' && data[i+1] == '/') {
				i++
			}
			i += 2
			continue
		}

		result.WriteByte(c)
		i++
	}

	return result.Bytes()
}

// Parse normalizes JSONC text and decodes the result into a generic map.
// The map is used read-only, to answer membership questions about the
// document; mutations are performed on the raw text by the caller.
//
// Returns an error if the text still fails to decode after normalization,
// meaning the document is structurally malformed rather than merely
// comment-bearing.
func Parse(data []byte) (map[string]interface{}, error) {
	var config map[string]interface{}
	if err := json.Unmarshal(Normalize(data), &config); err != nil {
		return nil, fmt.Errorf("invalid JSONC document: %w", err)
	}
	return config, nil
}
