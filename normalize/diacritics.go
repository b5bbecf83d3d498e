package normalize

import (
	"strings"
	"unicode"

	"github.com/bostanberkay/TREN/internal/trcase"
)

// maxSubstitutablePositions caps the variant generation to avoid
// combinatorial explosion. 2^10 = 1024 candidates max.
const maxSubstitutablePositions = 10

// maxWordBytes is the maximum byte length for a word to attempt
// diacritic restoration on.
const maxWordBytes = 256

// asciiToDiacritic maps lowercase ASCII characters to their Turkish
// diacritic equivalents. Applied after folding.
//
// The 'i' -> 'ı' mapping is included: folding maps both I and İ to i,
// so an ASCII i is genuinely ambiguous ("yil" is yıl) and the
// dictionary decides.
var asciiToDiacritic = [128]rune{
	'c': 'ç',
	'g': 'ğ',
	'i': 'ı',
	'o': 'ö',
	's': 'ş',
	'u': 'ü',
}

// hasDiacriticAlt reports whether the rune has a diacritic alternative.
func hasDiacriticAlt(r rune) bool {
	return r < 128 && r >= 0 && asciiToDiacritic[r] != 0
}

// containsDiacritics reports whether s contains any Turkish diacritical
// characters. Capital dotless I is ASCII and cannot be detected here;
// its lowercase form ı is.
func containsDiacritics(s string) bool {
	for _, r := range s {
		switch r {
		case 'ç', 'ğ', 'ı', 'ö', 'ş', 'ü',
			'Ç', 'Ğ', 'İ', 'Ö', 'Ş', 'Ü':
			return true
		}
	}
	return false
}

// restoreWord attempts to restore diacritics on a single word.
// Returns the original word unchanged if:
//   - the word is empty or too long
//   - it already contains diacritical characters
//   - it has no substitutable characters
//   - its folded form is itself a known Turkish word
//   - it has too many substitutable positions
//   - zero or multiple dictionary matches (unknown/ambiguous)
func (r *Restorer) restoreWord(word string) string {
	if word == "" || len(word) > maxWordBytes {
		return word
	}

	if containsDiacritics(word) {
		return word
	}

	folded := []rune(trcase.Fold(word))
	var positions []int
	for i, c := range folded {
		if hasDiacriticAlt(c) {
			positions = append(positions, i)
		}
	}

	if len(positions) == 0 {
		return word
	}

	// If the ASCII form is already a known word, do not modify it.
	if r.dicts.Turkish(string(folded)) {
		return word
	}

	if len(positions) > maxSubstitutablePositions {
		return word
	}

	// Generate variants lazily and probe the dictionary.
	// Short-circuit on the second match (ambiguous).
	totalVariants := 1 << len(positions)
	matchCount := 0
	matchMask := 0

	candidate := make([]rune, len(folded))
	for mask := 1; mask < totalVariants; mask++ {
		copy(candidate, folded)
		for bit, pos := range positions {
			if mask&(1<<bit) != 0 {
				candidate[pos] = asciiToDiacritic[folded[pos]]
			}
		}

		if r.dicts.Turkish(string(candidate)) {
			matchCount++
			if matchCount == 1 {
				matchMask = mask
			} else {
				return word
			}
		}
	}

	if matchCount != 1 {
		return word
	}

	return applyMask(word, folded, positions, matchMask)
}

// applyMask rewrites word with the winning substitutions, preserving
// the original casing rune by rune. Non-substituted positions keep the
// original rune untouched.
func applyMask(word string, folded []rune, positions []int, mask int) string {
	subst := make(map[int]rune, len(positions))
	for bit, pos := range positions {
		if mask&(1<<bit) != 0 {
			subst[pos] = asciiToDiacritic[folded[pos]]
		}
	}

	var b strings.Builder
	b.Grow(len(word) + len(subst))
	i := 0
	for _, orig := range word {
		repl, ok := subst[i]
		switch {
		case !ok:
			b.WriteRune(orig)
		case unicode.IsUpper(orig):
			// ı uppercases to ASCII I under the simple case mapping.
			b.WriteRune(unicode.ToUpper(repl))
		default:
			b.WriteRune(repl)
		}
		i++
	}
	return b.String()
}
