package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bostanberkay/TREN/internal/trcase"
)

// abbreviations maps common Turkish and English abbreviations (lowercase,
// with trailing dot) to true. Used to suppress false sentence breaks after
// abbreviated words. "m." is included to support greedy forward matching to
// "m.ö." and "m.s.".
var abbreviations = map[string]bool{
	// Turkish
	"dr.": true, "prof.": true, "doç.": true, "yrd.": true,
	"av.": true, "say.": true, "hz.": true,
	"vb.": true, "vs.": true, "bkz.": true, "örn.": true,
	"yy.": true, "no.": true, "tel.": true,
	"cad.": true, "sok.": true, "apt.": true, "mah.": true,
	"m.": true, "m.ö.": true, "m.s.": true,
	// English
	"mr.": true, "mrs.": true, "ms.": true, "st.": true,
	"etc.": true, "e.g.": true, "i.e.": true, "al.": true,
	"a.m.": true, "p.m.": true, "approx.": true, "dept.": true,
}

// SentenceTokens splits s into sentence-level tokens with byte offsets.
// Each returned Token has Type=Sentence. Adjacent tokens cover the entire
// input without gaps or overlaps: concatenating all Token.Text values
// reconstructs s exactly.
// Sentence boundaries are terminal punctuation (. ? ! and the ellipsis)
// followed by whitespace and an opener (uppercase letter, digit, or
// quotation mark), or a double newline. A built-in abbreviation list
// prevents false breaks after common abbreviations.
func SentenceTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return sentenceTokens(s)
}

// Sentences returns sentence strings from the text, whitespace-trimmed.
// Used by the preprocess command to turn running text into the pipeline's
// one-sentence-per-line input form.
func Sentences(s string) []string {
	if s == "" {
		return nil
	}
	tokens := sentenceTokens(s)
	sentences := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if trimmed := strings.TrimSpace(t.Text); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// sentenceTokens splits s into sentence-level tokens.
// The caller guarantees s is non-empty.
func sentenceTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/40+1)
	sentStart := 0 // byte offset where the current sentence begins

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// Double newline forces a sentence break regardless of punctuation.
		if r == '\n' && i+1 < len(s) && s[i+1] == '\n' {
			j := i
			for j < len(s) && s[j] == '\n' {
				j++
			}
			tokens = append(tokens, Token{Text: s[sentStart:j], Start: sentStart, End: j, Type: Sentence})
			sentStart = j
			i = j
			continue
		}

		// Terminal punctuation: . ? !
		if r == '.' || r == '?' || r == '!' {
			// Ellipsis spelled with dots: consume the whole run.
			if r == '.' && i+2 < len(s) && s[i+1] == '.' && s[i+2] == '.' {
				j := i
				for j < len(s) && s[j] == '.' {
					j++
				}
				if followedByOpener(s, j) {
					tokens = append(tokens, Token{Text: s[sentStart:j], Start: sentStart, End: j, Type: Sentence})
					sentStart = j
				}
				i = j
				continue
			}

			// Single dot: check for abbreviation.
			if r == '.' && isAbbreviation(s, i) {
				i += size
				continue
			}

			// Consume the entire punctuation cluster (e.g. "?!", "???").
			j := i + size
			for j < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[j:])
				if nr == '.' || nr == '?' || nr == '!' {
					j += ns
				} else {
					break
				}
			}

			if followedByOpener(s, j) {
				tokens = append(tokens, Token{Text: s[sentStart:j], Start: sentStart, End: j, Type: Sentence})
				sentStart = j
			}
			i = j
			continue
		}

		// Unicode ellipsis U+2026.
		if r == '…' {
			j := i + size
			if followedByOpener(s, j) {
				tokens = append(tokens, Token{Text: s[sentStart:j], Start: sentStart, End: j, Type: Sentence})
				sentStart = j
			}
			i = j
			continue
		}

		i += size
	}

	if sentStart < len(s) {
		tokens = append(tokens, Token{Text: s[sentStart:], Start: sentStart, End: len(s), Type: Sentence})
	}

	return tokens
}

// followedByOpener reports whether position pos in s is followed by at
// least one whitespace character and then a sentence opener: an uppercase
// letter, a digit, or a quotation mark.
func followedByOpener(s string, pos int) bool {
	i := pos
	foundSpace := false
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			foundSpace = true
			i += size
			continue
		}
		if !foundSpace {
			return false
		}
		return unicode.IsUpper(r) || unicode.IsDigit(r) ||
			r == '"' || r == '“' || r == '«' || r == '\''
	}
	return false
}

// isAbbreviation checks whether the dot at byte position dotPos is part of
// a known abbreviation rather than a sentence-ending period.
// Multi-part abbreviations are matched from either end: the first dot of
// "m.ö." matches via greedy forward extension, the second via backward
// chaining over the word-dot pairs behind it. The multi-word "et al."
// pattern is handled specially.
func isAbbreviation(s string, dotPos int) bool {
	word, wordStart := wordBefore(s, dotPos)
	if word == "" {
		return false
	}

	lower := trcase.Fold(word)
	candidate := lower + "."

	// "et al." — if the word is "al" and the previous word is "et",
	// suppress the sentence break.
	if lower == "al" {
		prevWord, _ := wordBefore(s, wordStart)
		if strings.EqualFold(prevWord, "et") {
			return true
		}
	}

	for {
		if abbreviations[candidate] {
			return greedyAbbreviation(s, candidate, dotPos+1)
		}
		// Chain backward: a dot and a further word directly adjacent
		// extend the candidate, e.g. "ö." becomes "m.ö.".
		if wordStart == 0 || s[wordStart-1] != '.' {
			return false
		}
		prevWord, prevStart := wordBefore(s, wordStart-1)
		if prevWord == "" {
			return false
		}
		candidate = trcase.Fold(prevWord) + "." + candidate
		wordStart = prevStart
	}
}

// greedyAbbreviation tries to extend a matched abbreviation prefix forward.
// It returns true once no further extension is possible, confirming the
// abbreviation. For example: prefix="m.", pos points to text after the dot.
// If the next chars are "ö.", it checks "m.ö." and recurses past its dot.
func greedyAbbreviation(s, prefix string, pos int) bool {
	if pos >= len(s) {
		return true // abbreviation at end of input
	}

	// Read the next word characters (letters only, no whitespace allowed).
	j := pos
	for j < len(s) {
		r, size := utf8.DecodeRuneInString(s[j:])
		if unicode.IsLetter(r) {
			j += size
		} else {
			break
		}
	}

	if j == pos || j >= len(s) || s[j] != '.' {
		return true // no extension possible, current match stands
	}

	extended := prefix + trcase.Fold(s[pos:j]) + "."
	if abbreviations[extended] {
		return greedyAbbreviation(s, extended, j+1)
	}

	return true
}

// wordBefore extracts the word immediately before byte position pos.
// A word consists of consecutive letters. Returns the word text and the
// byte offset where the word starts, or ("", pos) if no word is found.
func wordBefore(s string, pos int) (string, int) {
	// Skip dots immediately before pos (multi-part abbreviations like "e.g.").
	i := pos
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if r == '.' {
			i -= size
		} else {
			break
		}
	}

	end := i
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if unicode.IsLetter(r) {
			i -= size
		} else {
			break
		}
	}

	if i == end {
		return "", pos
	}

	return s[i:end], i
}
