// Package tokenizer splits code-switched Turkish-English text into the
// token stream the classification pipeline consumes.
//
// The package provides two API layers:
//
//   - Structured: Tokenize returns []Token with byte offsets and type
//     metadata. The invariant s[t.Start:t.End] == t.Text holds for every
//     token. Separator runes (punctuation, whitespace, symbols) produce no
//     token, so concatenating token texts does not reconstruct the input.
//
//   - Convenience: Words returns only Word-type token texts, the form
//     entity text is reduced to when building per-sentence NE sets.
//
// Token grammar: a word run (letters, numbers, underscore) optionally
// followed by one apostrophe (U+0027 or U+2019) and a further, possibly
// empty, word run is a single Word token; a lone apostrophe is an
// Apostrophe token; everything else separates tokens.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - U+02BC MODIFIER LETTER APOSTROPHE is not a recognized apostrophe;
//     sources normalize it to U+2019 upstream.
//   - A second apostrophe inside a word starts a new token ("x'y'z" yields
//     three tokens), mirroring the annotation convention.
package tokenizer

import (
	"fmt"
	"strings"
)

// wordsPerTokenEstimate is the estimated ratio of total tokens to word
// tokens, used to pre-allocate the words slice in Words.
const wordsPerTokenEstimate = 2

// TokenType classifies a token.
type TokenType int

const (
	Word       TokenType = iota // Word run, possibly with an internal or trailing apostrophe
	Apostrophe                  // A lone apostrophe with no adjacent word run
	Sentence                    // A full sentence, used only by SentenceTokens
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Apostrophe:
		return "Apostrophe"
	case Sentence:
		return "Sentence"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text  string    // The token text
	Start int       // Byte offset in the original string (inclusive)
	End   int       // Byte offset in the original string (exclusive)
	Type  TokenType // Classification of the token
}

// String returns a debug representation, e.g. Word("abi")[0:3].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Tokenize splits s into Word and Apostrophe tokens.
// The byte offset invariant s[t.Start:t.End] == t.Text holds for every token.
func Tokenize(s string) []Token {
	if s == "" {
		return nil
	}
	return scan(s)
}

// Words returns only Word-type token texts from s.
// Lone apostrophes are dropped.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := scan(s)
	words := make([]string, 0, len(tokens)/wordsPerTokenEstimate+1)
	for _, t := range tokens {
		if t.Type == Word {
			words = append(words, t.Text)
		}
	}
	return words
}

// Clean strips every rune that is not a letter, number, underscore, or
// apostrophe from s. Casing is preserved.
func Clean(s string) string {
	clean := true
	for _, r := range s {
		if !isWordRune(r) && !isApostrophe(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isWordRune(r) || isApostrophe(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
