package listings

import "strings"

// Slugify normalizes a free-text city or trade name to the mapping key
// form used throughout the store: lowercase, ampersands and runs of
// whitespace replaced with a single hyphen.
// "Brighton & Hove" -> "brighton-hove", "Gas Engineer" -> "gas-engineer".
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "&", " ")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t'
	})
	return strings.Join(fields, "-")
}
