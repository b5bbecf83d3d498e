package tokenizer

import (
	"unicode"
	"unicode/utf8"
)

// scan splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
//
// Rule priority (highest first):
//   - Word run start (letter, number, underscore) opens a Word token
//   - A lone apostrophe is an Apostrophe token
//   - Any other rune is a separator and emits nothing
func scan(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		if isWordRune(r) {
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		if isApostrophe(r) {
			tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Apostrophe})
			i += size
			continue
		}

		i += size
	}

	return tokens
}

// scanWord reads a Word token starting at position pos.
// Consumes a word run, then at most one apostrophe, then a further word
// run which may be empty. The apostrophe is consumed even when nothing
// follows it, so "Ali'" is one token.
func scanWord(s string, pos int) Token {
	i := consumeWordRun(s, pos)

	if i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if isApostrophe(r) {
			i += size
			i = consumeWordRun(s, i)
		}
	}

	return Token{Text: s[pos:i], Start: pos, End: i, Type: Word}
}

// consumeWordRun consumes a contiguous run of word runes.
func consumeWordRun(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !isWordRune(r) {
			break
		}
		pos += size
	}
	return pos
}

// isWordRune reports whether r is a letter, a number, or underscore.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// isApostrophe reports whether r is U+0027 APOSTROPHE or U+2019 RIGHT
// SINGLE QUOTATION MARK.
func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}
