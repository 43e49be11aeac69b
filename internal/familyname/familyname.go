// Package familyname normalizes font family names into registry keys.
package familyname

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Leaf returns the last "/"-separated segment of a declared family name,
// in Unicode NFC form. Manifests may namespace families ("packages/brand/Sans");
// only the leaf takes part in lookups.
//
// Surrounding whitespace is kept: "Sans" and " Sans" are different families.
func Leaf(family string) string {
	if i := strings.LastIndexByte(family, '/'); i >= 0 {
		family = family[i+1:]
	}
	return norm.NFC.String(family)
}
