package normalize

import (
	"testing"

	"github.com/bostanberkay/TREN/internal/trcase"
)

func FuzzNormalize(f *testing.F) {
	r := New(nil)

	f.Add("bugun cok guzel")
	f.Add("bugün çok güzel")
	f.Add("kisa")
	f.Add("server test hello")
	f.Add("su")
	f.Add("Bugun")
	f.Add("")
	f.Add("   ")
	f.Add("https://ornek.tr cok")
	f.Add("123 cok")
	f.Add("\xff\xfe")
	f.Add("\x00")
	f.Add("cok-cok")
	f.Add("Ankara'nin")

	f.Fuzz(func(t *testing.T, s string) {
		result := r.Normalize(s)

		// Idempotency: applying twice must produce the same result.
		if second := r.Normalize(result); second != result {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", s, result, second)
		}
	})
}

func FuzzNormalizeWord(f *testing.F) {
	r := New(nil)

	f.Add("cok")
	f.Add("çok")
	f.Add("kisa")
	f.Add("server")
	f.Add("su")
	f.Add("Bugun")
	f.Add("")
	f.Add("u")
	f.Add("\xff\xfe")
	f.Add("\x00")
	f.Add("COK")
	f.Add("attim")

	f.Fuzz(func(t *testing.T, word string) {
		result := r.NormalizeWord(word)

		// Idempotency.
		if second := r.NormalizeWord(result); second != result {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", word, result, second)
		}

		// Rune count must be preserved after NFC composition
		// (substitutions replace 1 rune with 1 rune, but NFC may merge
		// base + combining mark into a single precomposed rune).
		nfcWord := trcase.ComposeNFC(word)
		if len([]rune(result)) != len([]rune(nfcWord)) {
			t.Errorf("rune count changed:\ninput:  %q (nfc runes=%d)\noutput: %q (runes=%d)",
				word, len([]rune(nfcWord)), result, len([]rune(result)))
		}
	})
}
