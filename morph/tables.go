package morph

import (
	"sort"
	"unicode/utf8"
)

// Feature tag constants shared across tables.
const (
	tagAblative     = "Case=Abl"
	tagLocative     = "Case=Loc"
	tagGenitive     = "Case=Gen"
	tagInstrumental = "Case=Ins"
	tagEquative     = "Case=Equ"
	tagAccusative   = "Case=Acc"
	tagDative       = "Case=Dat"

	tagPlural = "Number=Plur"

	// TagAmbiguous marks a bare trailing vowel that could be either the
	// third-person-singular possessive or the accusative. The grammar
	// cannot decide without context, so the ambiguity is recorded as-is.
	TagAmbiguous = "Amb=P3sg_or_Acc"

	// TagLeftover marks residue that no pass could consume.
	TagLeftover = "Unparsed=Leftover"
)

// suffixEntry maps one surface form to the feature tags it contributes.
type suffixEntry struct {
	surface string
	tags    []string
}

func poss(person, number string) []string {
	return []string{"Poss=Yes", "Person[psor]=" + person, "Number[psor]=" + number}
}

// bufferCaseEndings are the buffer-n accusative and dative variants that
// appear after possessive-marked stems. They are tried before the plain
// case table on every iteration of the case pass. All surfaces are two
// runes long.
var bufferCaseEndings = []suffixEntry{
	{"nı", []string{tagAccusative}},
	{"ni", []string{tagAccusative}},
	{"nu", []string{tagAccusative}},
	{"nü", []string{tagAccusative}},
	{"na", []string{tagDative}},
	{"ne", []string{tagDative}},
}

// caseEndings is the case-suffix table, ordered length-descending so the
// first match is always the longest. Order within a length group never
// matters (equal-length surfaces are mutually exclusive at a string end)
// but follows the traditional ablative, locative, genitive, instrumental,
// equative, accusative, dative listing.
var caseEndings = []suffixEntry{
	// Four runes
	{"ndan", []string{tagAblative}},
	{"nden", []string{tagAblative}},
	// Three runes
	{"dan", []string{tagAblative}},
	{"den", []string{tagAblative}},
	{"tan", []string{tagAblative}},
	{"ten", []string{tagAblative}},
	{"nda", []string{tagLocative}},
	{"nde", []string{tagLocative}},
	{"nın", []string{tagGenitive}},
	{"nin", []string{tagGenitive}},
	{"nun", []string{tagGenitive}},
	{"nün", []string{tagGenitive}},
	{"yla", []string{tagInstrumental}},
	{"yle", []string{tagInstrumental}},
	// Two runes
	{"da", []string{tagLocative}},
	{"de", []string{tagLocative}},
	{"ta", []string{tagLocative}},
	{"te", []string{tagLocative}},
	{"ın", []string{tagGenitive}},
	{"in", []string{tagGenitive}},
	{"un", []string{tagGenitive}},
	{"ün", []string{tagGenitive}},
	{"la", []string{tagInstrumental}},
	{"le", []string{tagInstrumental}},
	{"ca", []string{tagEquative}},
	{"ce", []string{tagEquative}},
	{"yı", []string{tagAccusative}},
	{"yi", []string{tagAccusative}},
	{"yu", []string{tagAccusative}},
	{"yü", []string{tagAccusative}},
	{"ya", []string{tagDative}},
	{"ye", []string{tagDative}},
	// One rune
	{"ı", []string{tagAccusative}},
	{"i", []string{tagAccusative}},
	{"u", []string{tagAccusative}},
	{"ü", []string{tagAccusative}},
	{"a", []string{tagDative}},
	{"e", []string{tagDative}},
}

// possessiveLong are the four-rune possessive endings, tried before the
// short ones in every iteration of the possessive pass.
var possessiveLong = []suffixEntry{
	{"ımız", poss("1", "Plur")},
	{"imiz", poss("1", "Plur")},
	{"umuz", poss("1", "Plur")},
	{"ümüz", poss("1", "Plur")},
	{"ınız", poss("2", "Plur")},
	{"iniz", poss("2", "Plur")},
	{"unuz", poss("2", "Plur")},
	{"ünüz", poss("2", "Plur")},
	{"ları", poss("3", "Plur")},
	{"leri", poss("3", "Plur")},
}

// possessiveShort are the one- and two-rune possessive endings, ordered
// length-descending.
var possessiveShort = []suffixEntry{
	// Two runes
	{"ım", poss("1", "Sing")},
	{"im", poss("1", "Sing")},
	{"um", poss("1", "Sing")},
	{"üm", poss("1", "Sing")},
	{"ın", poss("2", "Sing")},
	{"in", poss("2", "Sing")},
	{"un", poss("2", "Sing")},
	{"ün", poss("2", "Sing")},
	{"sı", poss("3", "Sing")},
	{"si", poss("3", "Sing")},
	{"su", poss("3", "Sing")},
	{"sü", poss("3", "Sing")},
	// One rune
	{"m", poss("1", "Sing")},
	{"n", poss("2", "Sing")},
}

// pluralEndings holds the two plural allomorphs. The plural pass strips at
// most one of them.
var pluralEndings = []suffixEntry{
	{"lar", []string{tagPlural}},
	{"ler", []string{tagPlural}},
}

func deriv(kind, pos string) []string {
	return []string{"Deriv=" + kind, "DerivPOS=" + pos}
}

// derivationalSuffixes is the derivational table, ordered length-descending.
// Each entry contributes a derivation tag and the part of speech it derives.
var derivationalSuffixes = []suffixEntry{
	// Three runes
	{"lık", deriv("LIK", "NOUN")},
	{"lik", deriv("LIK", "NOUN")},
	{"luk", deriv("LIK", "NOUN")},
	{"lük", deriv("LIK", "NOUN")},
	{"sal", deriv("SAL", "ADJ")},
	{"sel", deriv("SAL", "ADJ")},
	{"siz", deriv("SIZ", "ADJ")},
	{"suz", deriv("SIZ", "ADJ")},
	{"süz", deriv("SIZ", "ADJ")},
	{"sız", deriv("SIZ", "ADJ")},
	// Two runes
	{"li", deriv("LI", "ADJ")},
	{"lı", deriv("LI", "ADJ")},
	{"lu", deriv("LI", "ADJ")},
	{"lü", deriv("LI", "ADJ")},
	{"ci", deriv("CI", "NOUN")},
	{"cı", deriv("CI", "NOUN")},
	{"cu", deriv("CI", "NOUN")},
	{"cü", deriv("CI", "NOUN")},
	{"çı", deriv("CI", "NOUN")},
	{"çi", deriv("CI", "NOUN")},
	{"çu", deriv("CI", "NOUN")},
	{"çü", deriv("CI", "NOUN")},
}

// knownSuffixes is the deduplicated union of every table surface, sorted
// rune-length-descending then lexicographically. Computed once at init.
var knownSuffixes []string

func init() {
	seen := make(map[string]bool)
	for _, table := range [][]suffixEntry{
		bufferCaseEndings, caseEndings, possessiveLong,
		possessiveShort, pluralEndings, derivationalSuffixes,
	} {
		for _, e := range table {
			seen[e.surface] = true
		}
	}
	knownSuffixes = make([]string, 0, len(seen))
	for s := range seen {
		knownSuffixes = append(knownSuffixes, s)
	}
	sort.Slice(knownSuffixes, func(i, j int) bool {
		li := utf8.RuneCountInString(knownSuffixes[i])
		lj := utf8.RuneCountInString(knownSuffixes[j])
		if li != lj {
			return li > lj
		}
		return knownSuffixes[i] < knownSuffixes[j]
	})
}

// KnownSuffixes returns every suffix surface the parser recognizes,
// deduplicated and sorted longest first (rune length descending, then
// lexicographic). The mixed-token detector walks this list as its
// candidate set. Callers must not modify the returned slice.
func KnownSuffixes() []string {
	return knownSuffixes
}
