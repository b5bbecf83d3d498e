package morph

import "unicode/utf8"

// vowels contains the eight Turkish vowels (lowercase only, input is
// folded before phonological checks).
var vowels = map[rune]bool{
	'a': true,
	'e': true,
	'ı': true,
	'i': true,
	'o': true,
	'ö': true,
	'u': true,
	'ü': true,
}

// IsVowel reports whether r is a Turkish vowel. Expects folded input.
func IsVowel(r rune) bool {
	return vowels[r]
}

// EndsInVowel reports whether the last rune of s is a Turkish vowel.
// The buffer consonants y and n attach only to vowel-final stems, so the
// mixed-token detector uses this to reject impossible stem-suffix joins.
func EndsInVowel(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return vowels[r]
}

// fourWayVowels are the high vowels that surface as a bare possessive or
// accusative marker. A trailing one of these with no other analysis is
// the ambiguous case the possessive pass tags rather than resolves.
var fourWayVowels = map[rune]bool{
	'ı': true,
	'i': true,
	'u': true,
	'ü': true,
}
