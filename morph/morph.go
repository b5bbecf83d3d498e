// Package morph analyzes Turkish suffix strings, decomposing them into
// ordered segments with grammatical feature tags.
//
// ParseSuffix strips from the right in four ordered passes: case endings
// (with the buffer-n variants tried first), possessives (long before
// short, with a documented ambiguity for a bare trailing high vowel),
// plural, and derivational suffixes. Each pass repeats greedily until
// nothing more matches; residue becomes a final segment tagged
// Unparsed=Leftover rather than an error.
//
// The pass order is part of the contract: the case pass consumes
// trailing bare vowels before the possessive pass runs, so a form like
// "leri" analyzes as accusative plus plural, not third-person-plural
// possessive. Downstream consumers depend on this exact behavior.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - Suffix analysis only; stems are never validated against a lexicon.
//   - Consonant assimilation at the stem boundary (kitap -> kitabı) is
//     the stem's concern and invisible here.
//   - Vowel harmony between segments is not enforced; an unharmonic but
//     table-listed ending still matches.
//   - Verb morphology (tense, person, voice) is out of scope.
package morph

import (
	"strings"
	"unicode/utf8"

	"github.com/bostanberkay/TREN/internal/trcase"
)

// Segment is one stripped suffix chunk and the feature tags it contributed.
type Segment struct {
	Surface string
	Tags    []string
}

// Parse is the result of analyzing one suffix string.
// Segments are in surface (left-to-right) order; concatenating their
// Surface fields reconstructs the folded input exactly. The three tag
// lists are deduplicated in first-occurrence order: Inflection holds
// case, possessive, and plural tags; Derivation holds Deriv=*/DerivPOS=*
// pairs plus the Unparsed=Leftover marker; Ambiguity holds Amb=* markers.
type Parse struct {
	Segments   []Segment
	Inflection []string
	Derivation []string
	Ambiguity  []string
}

// HasTags reports whether the parse produced any feature tag at all.
// Unparsed=Leftover counts: a suffix that is pure residue still HasTags.
func (p Parse) HasTags() bool {
	return len(p.Inflection) > 0 || len(p.Derivation) > 0 || len(p.Ambiguity) > 0
}

// Analyzed reports whether the parse produced at least one tag besides
// Unparsed=Leftover. The no-apostrophe mixed detector requires this
// stronger condition.
func (p Parse) Analyzed() bool {
	if len(p.Inflection) > 0 || len(p.Ambiguity) > 0 {
		return true
	}
	for _, tag := range p.Derivation {
		if tag != TagLeftover {
			return true
		}
	}
	return false
}

// Tags returns all feature tags in one slice: inflection, then
// derivation, then ambiguity markers.
func (p Parse) Tags() []string {
	out := make([]string, 0, len(p.Inflection)+len(p.Derivation)+len(p.Ambiguity))
	out = append(out, p.Inflection...)
	out = append(out, p.Derivation...)
	out = append(out, p.Ambiguity...)
	return out
}

// parser accumulates state for one ParseSuffix call.
type parser struct {
	s          string // unconsumed remainder, folded
	segRev     []Segment
	inflection []string
	derivation []string
	ambiguity  []string
}

// ParseSuffix analyzes the suffix string s.
// The input is folded (NFC + lowercase) before matching; segments are
// slices of the folded form.
func ParseSuffix(s string) Parse {
	p := parser{s: trcase.Fold(s)}

	p.casePass()
	p.possessivePass()
	p.pluralPass()
	p.derivationalPass()

	if p.s != "" {
		p.segRev = append(p.segRev, Segment{Surface: p.s, Tags: []string{TagLeftover}})
		p.derivation = addUnique(p.derivation, TagLeftover)
		p.s = ""
	}

	// Segments were collected rightmost-first; reverse to surface order.
	for i, j := 0, len(p.segRev)-1; i < j; i, j = i+1, j-1 {
		p.segRev[i], p.segRev[j] = p.segRev[j], p.segRev[i]
	}

	return Parse{
		Segments:   p.segRev,
		Inflection: p.inflection,
		Derivation: p.derivation,
		Ambiguity:  p.ambiguity,
	}
}

// casePass repeatedly strips case endings. The buffer-n variants are
// tried before the plain table on every iteration.
func (p *parser) casePass() {
	for p.s != "" {
		if p.strip(bufferCaseEndings, &p.inflection) {
			continue
		}
		if p.strip(caseEndings, &p.inflection) {
			continue
		}
		return
	}
}

// possessivePass repeatedly strips possessive endings, long before short.
// When neither table matches but the remainder ends in a bare high vowel,
// one rune is stripped and tagged ambiguous: it could be the third-person
// singular possessive or the accusative, and the grammar cannot tell.
func (p *parser) possessivePass() {
	for p.s != "" {
		if p.strip(possessiveLong, &p.inflection) {
			continue
		}
		if p.strip(possessiveShort, &p.inflection) {
			continue
		}
		r, size := utf8.DecodeLastRuneInString(p.s)
		if !fourWayVowels[r] {
			return
		}
		surface := p.s[len(p.s)-size:]
		p.s = p.s[:len(p.s)-size]
		p.segRev = append(p.segRev, Segment{Surface: surface, Tags: []string{TagAmbiguous}})
		p.ambiguity = addUnique(p.ambiguity, TagAmbiguous)
	}
}

// pluralPass strips at most one plural ending.
func (p *parser) pluralPass() {
	p.strip(pluralEndings, &p.inflection)
}

// derivationalPass repeatedly strips derivational suffixes.
func (p *parser) derivationalPass() {
	for p.s != "" {
		if !p.strip(derivationalSuffixes, &p.derivation) {
			return
		}
	}
}

// strip tries the entries of table in order (tables are declared
// length-descending, so the first hit is the longest) and removes the
// first surface the remainder ends with. Tags go to the segment and,
// deduplicated, to dst. Reports whether anything was stripped.
func (p *parser) strip(table []suffixEntry, dst *[]string) bool {
	for _, e := range table {
		if strings.HasSuffix(p.s, e.surface) {
			p.s = p.s[:len(p.s)-len(e.surface)]
			p.segRev = append(p.segRev, Segment{Surface: e.surface, Tags: e.tags})
			for _, tag := range e.tags {
				*dst = addUnique(*dst, tag)
			}
			return true
		}
	}
	return false
}

func addUnique(list []string, tag string) []string {
	for _, have := range list {
		if have == tag {
			return list
		}
	}
	return append(list, tag)
}
