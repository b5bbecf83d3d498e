package trcase

import "golang.org/x/text/unicode/norm"

// ComposeNFC returns s in Unicode NFC form. Decomposed Turkish letters
// (o/u + diaeresis, c/s + cedilla, g + breve, I + dot above) compose to
// ö, ü, ç, ş, ğ, İ.
func ComposeNFC(s string) string {
	// Fast path: already-composed input is returned without allocating.
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
