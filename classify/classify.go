// Package classify labels tokens of Turkish-English code-switched text.
//
// Each token receives one Label: TR or EN for monolingual tokens, MIXED
// for an English stem carrying a Turkish grammatical suffix (selfie'yi,
// weekendde), NE for named entities supplied by the caller, OTHER for
// non-linguistic tokens (URLs, mentions, hashtags, numbers, emoji), and
// UID when no method reaches sufficient confidence.
//
// Two API layers are provided:
//
//   - Token: (*Classifier).Classify decides one token. Choose and
//     DetectMixed expose the dictionary chooser and the no-apostrophe
//     mixed-token detector it composes.
//
//   - Sentence: DecideMatrixEmbed reduces the labels of one sentence to
//     its matrix (dominant) and embedded (secondary) languages.
//
// Curated dictionaries outrank the statistical identifier: a word in the
// Turkish top-N list is TR no matter what the identifier reports, and the
// Turkish top tier outranks the English list to bias ties toward the
// matrix language.
//
// All methods are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - The buffer-consonant check in DetectMixed inspects only the vowel
//     class of the stem's last letter, not full front/back harmony.
//   - A bare trailing high vowel is tagged ambiguous (third-person
//     possessive or accusative) rather than resolved.
//   - Single-language dictionaries only. Tokens from a third language
//     fall through to the identifier and usually end up UID.
package classify

import (
	"github.com/bostanberkay/TREN/dict"
	"github.com/bostanberkay/TREN/internal/trcase"
	"github.com/bostanberkay/TREN/lid"
	"github.com/bostanberkay/TREN/morph"
	"github.com/bostanberkay/TREN/tokenizer"
)

// Default identifier confidence floors for accepting a language on the
// dictionary-miss path.
const (
	DefaultENMin = 0.80
	DefaultTRMin = 0.80
)

// enContractions are apostrophe suffixes that signal an English clitic
// (it's, we're, I've, I'm, you'll, they'd, don't). A token carrying one
// is never split into a mixed stem+suffix pair; n't forms are covered by
// the bare t.
var enContractions = map[string]struct{}{
	"s":  {},
	"re": {},
	"ve": {},
	"m":  {},
	"ll": {},
	"d":  {},
	"t":  {},
}

// Params tunes a Classifier.
type Params struct {
	// ENMin and TRMin are the minimum identifier confidences for
	// accepting EN or TR when the dictionaries miss. Zero or negative
	// selects the default 0.80.
	ENMin float64
	TRMin float64

	// MixedStrict rejects a mixed-token split whose stem is itself a
	// known Turkish word, so native homographs are not double-counted.
	MixedStrict bool
}

// DefaultParams returns the standard classifier tuning: 0.80 confidence
// floors and strict mixed detection.
func DefaultParams() Params {
	return Params{ENMin: DefaultENMin, TRMin: DefaultTRMin, MixedStrict: true}
}

// Result is the outcome of classifying one token. Stem and Suffix are
// set only when Label is Mixed, and preserve the token's original casing.
type Result struct {
	Label  Label
	Stem   string
	Suffix string
}

// Classifier decides token labels from the frequency dictionaries, a
// language identifier, and the Turkish suffix tables.
type Classifier struct {
	dicts  *dict.Dictionaries
	lid    lid.Identifier
	params Params
}

// New returns a Classifier over the given dictionaries and identifier.
// A nil dicts selects the embedded frequency lists; a nil id selects the
// offline trigram identifier.
func New(dicts *dict.Dictionaries, id lid.Identifier, params Params) *Classifier {
	if dicts == nil {
		dicts = dict.Embedded()
	}
	if id == nil {
		id = lid.Trigram{}
	}
	if params.ENMin <= 0 {
		params.ENMin = DefaultENMin
	}
	if params.TRMin <= 0 {
		params.TRMin = DefaultTRMin
	}
	return &Classifier{dicts: dicts, lid: id, params: params}
}

// Choose picks the base language of a cleaned, folded word. Dictionary
// tiers are consulted first (Turkish top-N, English, full Turkish), then
// the identifier with the configured confidence floors; UID when nothing
// reaches confidence.
func (c *Classifier) Choose(word string) Label {
	if c.dicts.TurkishTop(word) {
		return TR
	}
	if c.dicts.English(word) {
		return EN
	}
	if c.dicts.Turkish(word) {
		return TR
	}
	p := c.lid.Predict(word)
	if p.Lang == "EN" && p.Confidence >= c.params.ENMin {
		return EN
	}
	if p.Lang == "TR" && p.Confidence >= c.params.TRMin {
		return TR
	}
	return UID
}

// Classify labels one token. ne holds the named-entity token set for the
// surrounding sentence, matched against the cleaned token with its
// original casing; a nil map disables the override.
//
// Decision order, first match wins: non-linguistic token; named entity;
// apostrophe-delimited English stem with a parsing Turkish suffix (Mixed)
// or Turkish stem with a clitic suffix (TR); no-apostrophe mixed
// detection when the base language is not already TR; the base language.
func (c *Classifier) Classify(token string, ne map[string]bool) Result {
	if IsOther(token) {
		return Result{Label: Other}
	}

	cleaned := tokenizer.Clean(token)
	if ne[cleaned] {
		return Result{Label: NE}
	}

	base := c.Choose(trcase.Fold(cleaned))

	if stem, suffix, ok := splitApostrophe(token); ok {
		switch c.Choose(trcase.Fold(tokenizer.Clean(stem))) {
		case EN:
			if morph.ParseSuffix(suffix).HasTags() {
				return Result{Label: Mixed, Stem: stem, Suffix: suffix}
			}
		case TR:
			// Turkish stem with an apostrophe clitic (Ankara'da).
			return Result{Label: TR}
		}
	}

	if base != TR {
		if stem, suffix, ok := c.DetectMixed(token); ok {
			return Result{Label: Mixed, Stem: stem, Suffix: suffix}
		}
	}
	return Result{Label: base}
}

// splitApostrophe splits a token on its apostrophe when it carries
// exactly one with text on both sides and the right side is not an
// English contraction. Returned slices keep the original casing.
func splitApostrophe(token string) (stem, suffix string, ok bool) {
	i := indexApostrophe(token)
	if i < 0 {
		return "", "", false
	}
	stem = token[:i]
	suffix = token[i+apostropheLen(token[i:]):]
	if stem == "" || suffix == "" || indexApostrophe(suffix) >= 0 {
		return "", "", false
	}
	if _, contraction := enContractions[trcase.Fold(suffix)]; contraction {
		return "", "", false
	}
	return stem, suffix, true
}

// indexApostrophe returns the byte index of the first ASCII or right
// single quotation mark apostrophe in s, or -1.
func indexApostrophe(s string) int {
	for i, r := range s {
		if r == '\'' || r == '’' {
			return i
		}
	}
	return -1
}

// apostropheLen returns the byte length of the apostrophe rune at the
// start of s.
func apostropheLen(s string) int {
	if s[0] == '\'' {
		return 1
	}
	return len("’")
}
