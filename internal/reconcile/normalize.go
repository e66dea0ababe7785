// Package reconcile assigns extracted document values to the named fields of
// a target application form.
package reconcile

import (
	"regexp"
	"strings"
)

var (
	// Machine-generated prefixes the form surface prepends to field names:
	// a short hex id ("id_4f2a_first-name") or a long content hash
	// ("3a7bd3e2360a3d29eea436fcfb7e44c7_first-name").
	shortIDPrefixRe  = regexp.MustCompile(`^id_[a-f0-9]+_`)
	longHashPrefixRe = regexp.MustCompile(`^[a-f0-9]{32,}_`)

	nonKeyCharsRe = regexp.MustCompile(`[^a-z0-9-]`)
	nonAlphaNumRe = regexp.MustCompile(`[^a-z0-9]`)
)

// NormalizeKey reduces a form-field name to its comparison key:
//  1. Strip a short hex-id prefix or a long (>=32 char) hex hash prefix.
//  2. Lowercase.
//  3. Strip every character that is not a lowercase letter, digit, or hyphen.
//
// The result may be empty when the name carries no usable characters; such
// fields never match.
func NormalizeKey(name string) string {
	key := shortIDPrefixRe.ReplaceAllString(name, "")
	key = longHashPrefixRe.ReplaceAllString(key, "")
	key = strings.ToLower(key)
	return nonKeyCharsRe.ReplaceAllString(key, "")
}

// normalizeMappingKey reduces a mapping-table key the same way as
// NormalizeKey, minus the prefix stripping (table keys carry no generated
// prefixes).
func normalizeMappingKey(key string) string {
	return nonKeyCharsRe.ReplaceAllString(strings.ToLower(key), "")
}

// stripAlphaNum reduces a name to lowercase alphanumerics only. Used by the
// fallback match, which is stricter than the mapping lookup: hyphens are
// stripped too, and only exact equality counts.
func stripAlphaNum(name string) string {
	return nonAlphaNumRe.ReplaceAllString(strings.ToLower(name), "")
}
