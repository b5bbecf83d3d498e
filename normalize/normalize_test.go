package normalize

import (
	"strings"
	"sync"
	"testing"

	"github.com/bostanberkay/TREN/dict"
)

func TestNormalizeWord(t *testing.T) {
	t.Parallel()
	r := New(nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		// -- Known dictionary words restored --

		{"restore cok", "cok", "çok"},
		{"restore bugun", "bugun", "bugün"},
		{"restore yil", "yil", "yıl"},
		{"restore dun", "dun", "dün"},
		{"restore oyle", "oyle", "öyle"},
		{"restore guzel", "guzel", "güzel"},
		{"restore simdi", "simdi", "şimdi"},
		{"restore kucuk", "kucuk", "küçük"},
		{"restore attim", "attim", "attım"},
		{"restore uc", "uc", "üç"},

		// -- Valid ASCII words unchanged --

		{"valid ascii su", "su", "su"},     // şu also exists, but su itself is a word
		{"valid ascii isim", "isim", "isim"}, // işim also exists
		{"valid ascii var", "var", "var"},

		// -- Ambiguous words unchanged --

		{"ambiguous kisa", "kisa", "kisa"}, // kısa or kışa

		// -- Unknown/foreign words unchanged --

		{"foreign meeting", "meeting", "meeting"},
		{"foreign server", "server", "server"},
		{"foreign selfie", "selfie", "selfie"},
		{"foreign park", "park", "park"},

		// -- Case preservation --

		{"title case Cok", "Cok", "Çok"},
		{"title case Bugun", "Bugun", "Bugün"},
		{"all caps COK", "COK", "ÇOK"},

		// -- Already correct words unchanged --

		{"already correct çok", "çok", "çok"},
		{"already correct bugün", "bugün", "bugün"},
		{"already correct ev", "ev", "ev"},

		// -- Apostrophe handling --

		{"apostrophe stem restored", "cok'a", "çok'a"},
		{"apostrophe curly quote", "cok’a", "çok’a"},

		// -- Hyphenated words --

		{"hyphenated restore", "cok-cok", "çok-çok"},
		{"hyphenated unknown part", "cok-server", "çok-server"},

		// -- Edge cases --

		{"empty string", "", ""},
		{"single char u", "u", "u"},
		{"no substitutable runes", "tamam", "tamam"},
		{"no variant matches", "herkes", "herkes"},
		{"very long word", strings.Repeat("abcdefghij", 30), strings.Repeat("abcdefghij", 30)}, // >maxWordBytes
		{"position cap", strings.Repeat("u", 11), strings.Repeat("u", 11)},                     // >maxSubstitutablePositions
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := r.NormalizeWord(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	r := New(nil)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		// -- Basic text restoration --

		{"simple sentence", "bugun cok guzel", "bugün çok güzel"},
		{"mixed known unknown", "cok meeting", "çok meeting"},
		{"preserve spacing", "cok  guzel", "çok  güzel"},
		{"preserve punctuation", "cok, guzel!", "çok, güzel!"},

		// -- URLs, numbers pass through --

		{"url parts unrestorable", "https://ornek.tr cok", "https://ornek.tr çok"},
		{"number unchanged", "123 cok", "123 çok"},

		// -- Hyphen preserved between tokens --

		{"hyphenated words", "cok-cok guzel", "çok-çok güzel"},

		// -- Ambiguous in context --

		{"ambiguous stays", "kisa bir yil", "kisa bir yıl"},

		// -- Edge cases --

		{"empty string", "", ""},
		{"whitespace only", "   ", "   "},
		{"single word", "cok", "çok"},

		// -- Idempotency --

		{"already restored", "bugün çok güzel", "bugün çok güzel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := r.Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeCustomDictionary(t *testing.T) {
	t.Parallel()

	// A list where the diacritic form exists and the ASCII form does not.
	dicts := dict.New([]byte("göl 10\nev 8"), nil, 1)
	r := New(dicts)

	if got := r.NormalizeWord("gol"); got != "göl" {
		t.Errorf("NormalizeWord(gol) = %q, want göl", got)
	}
	// ev needs no substitution and stays.
	if got := r.NormalizeWord("ev"); got != "ev" {
		t.Errorf("NormalizeWord(ev) = %q, want ev", got)
	}
	// Against the custom list, embedded vocabulary is unknown.
	if got := r.NormalizeWord("cok"); got != "cok" {
		t.Errorf("NormalizeWord(cok) = %q, want cok", got)
	}
}

func TestNormalizeConcurrent(t *testing.T) {
	t.Parallel()
	r := New(nil)

	const goroutines = 8
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := r.Normalize("bugun cok guzel"); got != "bugün çok güzel" {
					t.Errorf("Normalize = %q, want bugün çok güzel", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkNormalize(b *testing.B) {
	r := New(nil)
	input := strings.Repeat("bugun cok guzel bir yil oldu ", 20)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Normalize(input)
	}
}

func BenchmarkNormalizeWord(b *testing.B) {
	r := New(nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.NormalizeWord("kucuk")
	}
}
