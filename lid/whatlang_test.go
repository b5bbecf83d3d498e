package lid

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWhatlangPredict(t *testing.T) {
	t.Parallel()
	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		if got := Whatlang{}.Predict(""); got != (Prediction{}) {
			t.Errorf("got %+v, want zero Prediction", got)
		}
	})

	// The library's per-word choices shift between releases, so only the
	// shape of the result is pinned here.
	t.Run("result shape", func(t *testing.T) {
		t.Parallel()
		inputs := []string{"internationalization", "değerlendirmelerinde", "the", "ve"}
		for _, in := range inputs {
			got := Whatlang{}.Predict(in)
			if got.Confidence < 0 || got.Confidence > 1 {
				t.Errorf("Predict(%q): confidence %v out of [0, 1]", in, got.Confidence)
			}
			if got.Lang == "" {
				continue
			}
			if utf8.RuneCountInString(got.Lang) != 2 {
				t.Errorf("Predict(%q): language %q is not a two-letter code", in, got.Lang)
			}
			if got.Lang != strings.ToUpper(got.Lang) {
				t.Errorf("Predict(%q): language %q is not upper case", in, got.Lang)
			}
		}
	})
}
