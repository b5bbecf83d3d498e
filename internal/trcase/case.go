// Package trcase provides the case folding used by every lookup path in
// the pipeline: Unicode NFC composition followed by lowercasing, in one
// call.
//
// Turkish dotted/dotless I notes:
//   - İ (U+0130, dotted capital I) lowers to i (U+0069) under Go's simple
//     case mapping; no combining dot is produced.
//   - I (U+0049) lowers to i (U+0069), not ı (U+0131). Mixed Turkish-English
//     text favors this: "I", "IT", "AI" stay findable in English word lists,
//     and Turkish sources are expected to carry ı explicitly.
//
// Fold never changes the rune count of NFC input, so callers may slice a
// folded string and its original by the same rune offsets.
//
// All functions are safe for concurrent use.
package trcase

import "strings"

// Fold returns s composed to NFC and lowercased.
func Fold(s string) string {
	return strings.ToLower(ComposeNFC(s))
}
