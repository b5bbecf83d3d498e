package classify

import (
	"regexp"
	"unicode"
)

// Patterns for non-linguistic tokens. Prefix patterns are anchored: a
// token that starts like a URL, mention, or hashtag counts whole.
var (
	urlRE     = regexp.MustCompile(`(?i)^(https?://\S+|www\.\S+)`)
	mentionRE = regexp.MustCompile(`^@[\p{L}\p{N}_]+`)
	hashtagRE = regexp.MustCompile(`^#[\p{L}\p{N}_]+`)
	numericRE = regexp.MustCompile(`^\p{Nd}+([.,:/-]\p{Nd}+)*$`)
)

// IsOther reports whether token is non-linguistic and should be labeled
// OTHER without consulting dictionaries: the empty token, URLs, mentions,
// hashtags, plain and separator-joined numbers (12.30, 1/2), anything
// containing an emoji, and tokens made entirely of punctuation.
func IsOther(token string) bool {
	if token == "" {
		return true
	}
	if urlRE.MatchString(token) || mentionRE.MatchString(token) || hashtagRE.MatchString(token) {
		return true
	}
	if numericRE.MatchString(token) {
		return true
	}
	if hasEmoji(token) {
		return true
	}
	return nonLinguistic(token)
}

// hasEmoji reports whether token contains any code point above the Basic
// Multilingual Plane; in chat and social-media text that is emoji.
func hasEmoji(token string) bool {
	for _, r := range token {
		if r > 0xFFFF {
			return true
		}
	}
	return false
}

// nonLinguistic reports whether no rune of token is a letter or a number.
func nonLinguistic(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
