package classify

import (
	"encoding/json"
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/bostanberkay/TREN/dict"
	"github.com/bostanberkay/TREN/lid"
)

// stubLID returns the same prediction for every word. The zero value
// predicts nothing, which reduces the classifier to its dictionaries.
type stubLID struct {
	p lid.Prediction
}

func (s stubLID) Predict(string) lid.Prediction { return s.p }

func TestClassify(t *testing.T) {
	t.Parallel()
	c := New(nil, nil, DefaultParams())

	tests := []struct {
		name string
		in   string
		ne   map[string]bool
		want Result
	}{
		{
			name: "turkish full tier word",
			in:   "kitabı",
			want: Result{Label: TR},
		},
		{
			name: "apostrophe mixed",
			in:   "selfie'yi",
			want: Result{Label: Mixed, Stem: "selfie", Suffix: "yi"},
		},
		{
			name: "apostrophe mixed keeps casing",
			in:   "Selfie'YI",
			want: Result{Label: Mixed, Stem: "Selfie", Suffix: "YI"},
		},
		{
			name: "apostrophe turkish clitic",
			in:   "Ankara'da",
			want: Result{Label: TR},
		},
		{
			name: "no apostrophe mixed",
			in:   "meetingde",
			want: Result{Label: Mixed, Stem: "meeting", Suffix: "de"},
		},
		{
			name: "english contraction not split",
			in:   "it's",
			want: Result{Label: UID},
		},
		{
			name: "english frequency word",
			in:   "weekend",
			want: Result{Label: EN},
		},
		{
			name: "hashtag",
			in:   "#kodland",
			want: Result{Label: Other},
		},
		{
			name: "mention",
			in:   "@kullanici",
			want: Result{Label: Other},
		},
		{
			name: "empty token",
			in:   "",
			want: Result{Label: Other},
		},
		{
			name: "named entity overrides dictionary",
			in:   "Weekend",
			ne:   map[string]bool{"Weekend": true},
			want: Result{Label: NE},
		},
		{
			name: "named entity match is case sensitive",
			in:   "weekend",
			ne:   map[string]bool{"Weekend": true},
			want: Result{Label: EN},
		},
		{
			name: "no evidence",
			in:   "zqxw",
			want: Result{Label: UID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := c.Classify(tt.in, tt.ne)
			if got != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassifyIdempotent(t *testing.T) {
	t.Parallel()
	c := New(nil, nil, DefaultParams())
	for _, in := range []string{"selfie'yi", "kitabı", "meetingde", "zqxw", "#tag"} {
		first := c.Classify(in, nil)
		second := c.Classify(in, nil)
		if first != second {
			t.Errorf("Classify(%q) changed between calls: %+v then %+v", in, first, second)
		}
	}
}

func TestChoose(t *testing.T) {
	t.Parallel()
	dicts := dict.New(
		[]byte("bir 100\nev 50"),
		[]byte("the 90\nbir 80\nev 40"),
		1,
	)

	t.Run("tier priority", func(t *testing.T) {
		t.Parallel()
		c := New(dicts, stubLID{}, DefaultParams())
		tests := []struct {
			word string
			want Label
		}{
			{"bir", TR}, // top tier beats the English list
			{"the", EN},
			{"ev", EN}, // English list beats the full Turkish tier
			{"yok", UID},
		}
		for _, tt := range tests {
			if got := c.Choose(tt.word); got != tt.want {
				t.Errorf("Choose(%q) = %v, want %v", tt.word, got, tt.want)
			}
		}
	})

	t.Run("identifier fallback thresholds", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name string
			p    lid.Prediction
			want Label
		}{
			{"en above floor", lid.Prediction{Lang: "EN", Confidence: 0.9}, EN},
			{"en at floor", lid.Prediction{Lang: "EN", Confidence: 0.80}, EN},
			{"en below floor", lid.Prediction{Lang: "EN", Confidence: 0.79}, UID},
			{"tr above floor", lid.Prediction{Lang: "TR", Confidence: 0.85}, TR},
			{"tr at floor", lid.Prediction{Lang: "TR", Confidence: 0.80}, TR},
			{"tr below floor", lid.Prediction{Lang: "TR", Confidence: 0.5}, UID},
			{"other language", lid.Prediction{Lang: "DE", Confidence: 0.99}, UID},
			{"no prediction", lid.Prediction{}, UID},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				c := New(dicts, stubLID{p: tt.p}, DefaultParams())
				if got := c.Choose("abcdef"); got != tt.want {
					t.Errorf("Choose with %+v = %v, want %v", tt.p, got, tt.want)
				}
			})
		}
	})
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()
	c := New(nil, nil, Params{})
	if c.params.ENMin != DefaultENMin {
		t.Errorf("ENMin = %v, want %v", c.params.ENMin, DefaultENMin)
	}
	if c.params.TRMin != DefaultTRMin {
		t.Errorf("TRMin = %v, want %v", c.params.TRMin, DefaultTRMin)
	}
	if c.dicts == nil || c.lid == nil {
		t.Error("nil dicts or identifier not defaulted")
	}
}

func TestLabelString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		label Label
		want  string
	}{
		{UID, "UID"},
		{TR, "TR"},
		{EN, "EN"},
		{Mixed, "MIXED"},
		{NE, "NE"},
		{Other, "OTHER"},
		{Label(99), "Label(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.label.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabelJSON(t *testing.T) {
	t.Parallel()
	labels := []Label{UID, TR, EN, Mixed, NE, Other}

	for _, label := range labels {
		t.Run(label.String(), func(t *testing.T) {
			t.Parallel()
			data, err := json.Marshal(label)
			if err != nil {
				t.Fatalf("MarshalJSON: %v", err)
			}

			var decoded Label
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("UnmarshalJSON: %v", err)
			}

			if decoded != label {
				t.Errorf("round-trip: got %v, want %v", decoded, label)
			}
		})
	}

	t.Run("unmarshal unknown string", func(t *testing.T) {
		t.Parallel()
		var l Label
		if err := l.UnmarshalJSON([]byte(`"FR"`)); err == nil {
			t.Error("want error for unknown label, got nil")
		}
	})

	t.Run("unmarshal non-string", func(t *testing.T) {
		t.Parallel()
		var l Label
		if err := l.UnmarshalJSON([]byte(`7`)); err == nil {
			t.Error("want error for non-string JSON, got nil")
		}
	})
}

func BenchmarkClassifyMixed(b *testing.B) {
	c := New(nil, nil, DefaultParams())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Classify("selfie'yi", nil)
	}
}

func BenchmarkClassifyPlain(b *testing.B) {
	c := New(nil, nil, DefaultParams())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Classify("kitabı", nil)
	}
}

func FuzzClassify(f *testing.F) {
	f.Add("selfie'yi")
	f.Add("kitabı")
	f.Add("#kodland")
	f.Add("it's")
	f.Add("meetingde")
	f.Add("Ankara'da")
	f.Add("")
	f.Add("😀")
	f.Add("a''b")

	c := New(nil, nil, DefaultParams())
	f.Fuzz(func(t *testing.T, token string) {
		got := c.Classify(token, nil)

		switch got.Label {
		case UID, TR, EN, Mixed, NE, Other:
		default:
			t.Fatalf("Classify(%q): label out of range: %v", token, got.Label)
		}
		if (got.Stem != "" || got.Suffix != "") && got.Label != Mixed {
			t.Fatalf("Classify(%q) = %+v: stem/suffix on a non-MIXED result", token, got)
		}
		if got.Label == Mixed {
			if got.Stem == "" || got.Suffix == "" {
				t.Fatalf("Classify(%q) = %+v: MIXED with empty stem or suffix", token, got)
			}
			if utf8.ValidString(token) {
				joined := got.Stem + got.Suffix
				apos := got.Stem + "'" + got.Suffix
				aposU := got.Stem + "’" + got.Suffix
				if token != joined && token != apos && token != aposU {
					t.Fatalf("Classify(%q) = %+v: stem+suffix does not rebuild the token", token, got)
				}
			}
		}

		if again := c.Classify(token, nil); again != got {
			t.Fatalf("Classify(%q) not deterministic: %+v then %+v", token, got, again)
		}
	})
}

func ExampleClassifier_Classify() {
	c := New(nil, nil, DefaultParams())
	r := c.Classify("selfie'yi", nil)
	fmt.Println(r.Label, r.Stem, r.Suffix)
	// Output:
	// MIXED selfie yi
}
