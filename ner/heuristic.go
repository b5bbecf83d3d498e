package ner

import (
	"unicode"
	"unicode/utf8"

	"github.com/bostanberkay/TREN/tokenizer"
)

// Heuristic recognizes entities by capitalization alone: a run of
// adjacent capitalized words (first letter upper, at least two letters,
// separated only by spaces) is one entity. A run of a single word at the
// start of the sentence is kept only when the word is an all-caps
// acronym, since sentence case makes an initial capital uninformative.
//
// The heuristic has no model to load; EnsureReady is a no-op. It cannot
// tell person from place, it treats shouted all-caps words as entities,
// and a case suffix attached to a name (Ankara'da) stays inside the
// span. A model-backed Provider replaces it where that matters.
type Heuristic struct{}

// EnsureReady implements Provider. It never fails.
func (Heuristic) EnsureReady() error { return nil }

// Analyze returns the capitalized-run spans of sentence.
func (Heuristic) Analyze(sentence string) ([]Span, error) {
	tokens := tokenizer.Tokenize(sentence)

	var spans []Span
	for i := 0; i < len(tokens); {
		if !capitalized(tokens[i].Text) {
			i++
			continue
		}
		j := i + 1
		for j < len(tokens) && capitalized(tokens[j].Text) && spacesOnly(sentence[tokens[j-1].End:tokens[j].Start]) {
			j++
		}
		if j-i >= 2 || i > 0 || acronym(tokens[i].Text) {
			start, end := tokens[i].Start, tokens[j-1].End
			spans = append(spans, Span{Text: sentence[start:end], Start: start, End: end})
		}
		i = j
	}
	return spans, nil
}

// capitalized reports whether s starts with an upper-case letter and has
// at least two runes.
func capitalized(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r) && utf8.RuneCountInString(s) >= 2
}

// acronym reports whether every rune of s is an upper-case letter.
func acronym(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return s != ""
}

// spacesOnly reports whether s is entirely white space.
func spacesOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
