package classify

import (
	"strings"
	"unicode/utf8"

	"github.com/bostanberkay/TREN/internal/trcase"
	"github.com/bostanberkay/TREN/morph"
	"github.com/bostanberkay/TREN/tokenizer"
)

// DetectMixed looks for a code-switch inside a token with no apostrophe:
// an English stem followed directly by a Turkish suffix (weekendde,
// selfieyi). It reports the stem and suffix slices with their original
// casing, or ok=false when no split survives.
//
// Candidate suffixes are tried longest first, so compound endings match
// before the substrings they contain. A candidate survives when all of
// the following hold:
//
//   - the stem left of it is at least two letters once cleaned,
//   - the stem is English (frequency list, or identifier at confidence),
//   - a candidate starting with buffer y or n follows a vowel-final stem,
//   - the candidate parses to at least one real grammatical tag,
//   - with MixedStrict, the stem is not itself a known Turkish word.
//
// A token whose folded form is in the full Turkish frequency set is
// assumed native and never split.
func (c *Classifier) DetectMixed(token string) (stem, suffix string, ok bool) {
	folded := trcase.Fold(token)
	if c.dicts.Turkish(folded) {
		return "", "", false
	}

	var runes []rune
	for _, cand := range morph.KnownSuffixes() {
		n := utf8.RuneCountInString(cand)
		if n < 2 {
			continue
		}
		if !strings.HasSuffix(folded, cand) {
			continue
		}
		if runes == nil {
			runes = []rune(token)
		}
		if n >= len(runes) {
			continue
		}

		base := string(runes[:len(runes)-n])
		baseClean := trcase.Fold(tokenizer.Clean(base))
		if utf8.RuneCountInString(baseClean) < 2 {
			continue
		}
		if !c.englishBase(baseClean) {
			continue
		}
		// Buffer consonants y and n only follow vowel-final stems.
		if (cand[0] == 'y' || cand[0] == 'n') && !morph.EndsInVowel(baseClean) {
			continue
		}
		if !morph.ParseSuffix(cand).Analyzed() {
			continue
		}
		if c.params.MixedStrict && c.dicts.Turkish(baseClean) {
			continue
		}
		return base, string(runes[len(runes)-n:]), true
	}
	return "", "", false
}

// englishBase reports whether a cleaned, folded stem reads as English:
// present in the English frequency list, or identified as EN at the
// configured confidence.
func (c *Classifier) englishBase(word string) bool {
	if c.dicts.English(word) {
		return true
	}
	p := c.lid.Predict(word)
	return p.Lang == "EN" && p.Confidence >= c.params.ENMin
}
