package lid

import (
	"unicode"

	"github.com/bostanberkay/TREN/internal/trcase"
)

// Scoring weights for the trigram backend.
const (
	// turkishLetterWeight amplifies the Turkish-specific letters
	// ç ğ ı ö ş ü; a single one is near-decisive for a short word.
	turkishLetterWeight = 10.0

	// englishTurkicDampener suppresses the English score when Turkish
	// letters are present in the word.
	englishTurkicDampener = 0.05
)

// Trigram is a self-contained Turkish/English scorer: Turkish-specific
// letter evidence plus character-trigram cosine similarity against the
// embedded profiles. No model file, no startup cost, deterministic; the
// offline and test backend. Whatlang covers more languages.
//
// A word with no Turkish letters and no profile trigram hits yields the
// zero Prediction rather than a low-confidence guess.
type Trigram struct{}

// Predict scores word against the Turkish and English profiles.
func (Trigram) Predict(word string) Prediction {
	folded := trcase.Fold(word)

	letters := make([]rune, 0, len(folded))
	turkishCount := 0
	for _, r := range folded {
		if !unicode.IsLetter(r) {
			continue
		}
		letters = append(letters, r)
		if turkishLetters[r] {
			turkishCount++
		}
	}
	if len(letters) == 0 {
		return Prediction{}
	}

	input := extractTrigrams(letters)
	trScore := float64(turkishCount)*turkishLetterWeight +
		trigramCosine(input, trTrigrams, trTrigramNorm)
	enScore := trigramCosine(input, enTrigrams, enTrigramNorm)
	if turkishCount > 0 {
		enScore *= englishTurkicDampener
	}

	total := trScore + enScore
	if total == 0 {
		return Prediction{}
	}
	if trScore >= enScore {
		return Prediction{Lang: "TR", Confidence: trScore / total}
	}
	return Prediction{Lang: "EN", Confidence: enScore / total}
}
