// Package normalize restores missing Turkish diacritics in text.
//
// Asciified Turkish ("bugun cok guzel") is restored by dictionary
// lookup: every combination of c/g/i/o/s/u -> ç/ğ/ı/ö/ş/ü substitutions
// is generated per word and probed against the Turkish frequency list.
// A word is restored only when exactly one variant is a known word;
// words whose ASCII form is itself a known word ("su" must not become
// "şu"), ambiguous forms ("kisa" matches both kısa and kışa), and words
// already carrying diacritics are returned unchanged.
//
// Two methods are provided:
//
//   - Normalize processes full text: tokenizes, restores each word
//     independently, and reassembles around the original separators.
//   - NormalizeWord processes a single word.
//
// A Restorer is safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - Words absent from the frequency list (rarer inflected forms,
//     names, foreign words) are not restored.
//   - Ambiguous ASCII forms are never restored.
//   - Worst-case cost is O(2^N) per word where N is the number of
//     substitutable positions (capped at 10). Callers processing
//     untrusted input should apply timeouts or rate limiting.
package normalize

import (
	"strings"

	"github.com/bostanberkay/TREN/dict"
	"github.com/bostanberkay/TREN/internal/trcase"
	"github.com/bostanberkay/TREN/tokenizer"
)

// maxInputBytes is the maximum input size for Normalize.
// Inputs exceeding this are returned unchanged.
const maxInputBytes = 1 << 20 // 1 MiB

// maxHyphenParts is the maximum number of segments a hyphenated word may
// have. Words split into more parts than this are returned unchanged.
const maxHyphenParts = 8

// Restorer restores diacritics against a Turkish frequency list.
type Restorer struct {
	dicts *dict.Dictionaries
}

// New builds a Restorer over the given dictionaries. Nil selects the
// embedded frequency lists.
func New(dicts *dict.Dictionaries) *Restorer {
	if dicts == nil {
		dicts = dict.Embedded()
	}
	return &Restorer{dicts: dicts}
}

// Normalize restores missing Turkish diacritics in text. The input is
// tokenized, each word restored independently, and the result
// reassembled around the original separator runes. Unknown or ambiguous
// words are left unchanged. Returns the input unchanged for empty or
// oversized (>1 MiB) input.
func (r *Restorer) Normalize(s string) string {
	if s == "" || len(s) > maxInputBytes {
		return s
	}
	s = trcase.ComposeNFC(s)

	tokens := tokenizer.Tokenize(s)
	if len(tokens) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/4) // restored diacritics widen ASCII bytes to two-byte UTF-8
	last := 0
	for _, tok := range tokens {
		b.WriteString(s[last:tok.Start])
		if tok.Type == tokenizer.Word {
			b.WriteString(r.restoreToken(tok.Text))
		} else {
			b.WriteString(tok.Text)
		}
		last = tok.End
	}
	b.WriteString(s[last:])
	return b.String()
}

// NormalizeWord restores diacritics on a single word.
// Returns the input unchanged if the word is unknown or ambiguous.
func (r *Restorer) NormalizeWord(word string) string {
	if word == "" {
		return word
	}
	word = trcase.ComposeNFC(word)
	if len(word) > maxWordBytes {
		return word
	}
	return r.restoreToken(word)
}

// restoreToken handles hyphenated compounds and apostrophe clitics
// before delegating to restoreWord for each part.
func (r *Restorer) restoreToken(word string) string {
	// Hyphenated words: restore each part independently.
	if idx := strings.IndexByte(word, '-'); idx > 0 && idx < len(word)-1 {
		return r.restoreHyphenated(word)
	}

	// Apostrophe clitics: restore the stem part only.
	for i, c := range word {
		if i > 0 && isApostrophe(c) && i < len(word)-1 {
			return r.restoreWord(word[:i]) + word[i:]
		}
	}

	return r.restoreWord(word)
}

// restoreHyphenated splits on hyphens, restores each part, and rejoins.
// Words with more than maxHyphenParts segments are returned unchanged.
func (r *Restorer) restoreHyphenated(word string) string {
	parts := strings.Split(word, "-")
	if len(parts) <= 1 || len(parts) > maxHyphenParts {
		return word
	}
	for i, part := range parts {
		if part != "" {
			parts[i] = r.restoreWord(part)
		}
	}
	return strings.Join(parts, "-")
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’'
}
