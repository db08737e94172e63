package reconcile

import "strings"

// keySeparator joins the normalized identity fields. Part codes are uppercase
// alphanumerics, so the pipe never appears in a normalized field and the key
// stays injective over the triple.
const keySeparator = "|"

// Normalize uppercases and trims an identity field.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Key derives the identity key for a (MSN, PNL, part number) triple.
// Derivation is case- and whitespace-insensitive. Empty fields are permitted
// here; callers reject emptiness where it matters.
func Key(msn, pnl, partNumber string) string {
	return Normalize(msn) + keySeparator + Normalize(pnl) + keySeparator + Normalize(partNumber)
}
