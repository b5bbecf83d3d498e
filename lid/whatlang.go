package lid

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Whatlang identifies languages with the whatlanggo trigram detector.
// It covers dozens of languages; downstream code only acts on TR and EN
// predictions, everything else falls through to UID.
type Whatlang struct{}

// Predict runs whatlanggo detection on word.
func (Whatlang) Predict(word string) Prediction {
	if word == "" {
		return Prediction{}
	}
	info := whatlanggo.Detect(word)
	code := info.Lang.Iso6391()
	if code == "" {
		return Prediction{}
	}
	return Prediction{
		Lang:       strings.ToUpper(code),
		Confidence: clamp01(info.Confidence),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
