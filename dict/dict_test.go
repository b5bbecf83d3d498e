package dict

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bostanberkay/TREN/data"
)

func TestNew(t *testing.T) {
	tr := []byte("bir 100\niki 90\nüç 80\ndört 70\n")
	en := []byte("the 200\nof 150\nselfie 10\n")
	d := New(tr, en, 2)

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"top tier rank 1", d.TurkishTop("bir"), true},
		{"top tier rank 2", d.TurkishTop("iki"), true},
		{"rank 3 below cutoff", d.TurkishTop("üç"), false},
		{"rank 3 in full set", d.Turkish("üç"), true},
		{"rank 4 in full set", d.Turkish("dört"), true},
		{"english member", d.English("selfie"), true},
		{"english not turkish", d.Turkish("selfie"), false},
		{"turkish not english", d.English("bir"), false},
		{"absent everywhere", d.Turkish("yok"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestNewFoldsWords(t *testing.T) {
	d := New([]byte("İyi 5\nISPARTA 4\n"), []byte("The 9\n"), DefaultTopN)

	if !d.Turkish("iyi") {
		t.Error("İyi should be stored folded as iyi")
	}
	if !d.Turkish("isparta") {
		t.Error("ISPARTA should be stored folded as isparta")
	}
	if d.Turkish("İyi") {
		t.Error("lookups expect folded input; İyi should miss")
	}
	if !d.English("the") {
		t.Error("The should be stored folded as the")
	}
}

func TestNewBlankLinesConsumeRankSlots(t *testing.T) {
	// The second rank slot is spent on the blank line, so only bir makes
	// the top tier even though iki is the second word.
	d := New([]byte("bir 100\n\niki 90\n"), nil, 2)

	if !d.TurkishTop("bir") {
		t.Error("bir should be in the top tier")
	}
	if d.TurkishTop("iki") {
		t.Error("iki should be below the cutoff: the blank line took its slot")
	}
	if !d.Turkish("iki") {
		t.Error("iki should still be in the full set")
	}
}

func TestNewBareColumnList(t *testing.T) {
	d := New([]byte("bir\niki\n"), []byte("the\n"), DefaultTopN)

	if !d.TurkishTop("bir") || !d.Turkish("iki") || !d.English("the") {
		t.Error("single-column lists should parse like word-count lists")
	}
}

func TestCounts(t *testing.T) {
	d := New([]byte("bir 3\niki 2\nüç 1\n"), []byte("the 5\nof 4\n"), 2)
	trTop, trAll, en := d.Counts()
	if trTop != 2 || trAll != 3 || en != 2 {
		t.Errorf("Counts() = (%d, %d, %d), want (2, 3, 2)", trTop, trAll, en)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	trPath := filepath.Join(dir, "tr.txt")
	enPath := filepath.Join(dir, "en.txt")
	if err := os.WriteFile(trPath, []byte("bir 10\niki 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(enPath, []byte("the 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(trPath, enPath, 1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !d.TurkishTop("bir") || d.TurkishTop("iki") || !d.Turkish("iki") || !d.English("the") {
		t.Errorf("loaded sets wrong: counts %v", func() []int {
			a, b, c := d.Counts()
			return []int{a, b, c}
		}())
	}
}

func TestLoadEmptyFile(t *testing.T) {
	// mmap rejects zero-length files; the plain-read fallback must cover it.
	dir := t.TempDir()
	trPath := filepath.Join(dir, "tr.txt")
	enPath := filepath.Join(dir, "en.txt")
	if err := os.WriteFile(trPath, []byte("bir 10\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(enPath, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := Load(trPath, enPath, DefaultTopN)
	if err != nil {
		t.Fatalf("Load with empty english list: %v", err)
	}
	_, _, en := d.Counts()
	if en != 0 {
		t.Errorf("english set has %d entries, want 0", en)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	enPath := filepath.Join(dir, "en.txt")
	if err := os.WriteFile(enPath, []byte("the 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	missing := filepath.Join(dir, "absent.txt")
	_, err := Load(missing, enPath, DefaultTopN)
	if err == nil {
		t.Fatal("Load with missing turkish list should fail")
	}
	if !strings.Contains(err.Error(), "absent.txt") {
		t.Errorf("error should name the offending file, got: %v", err)
	}
}

func TestEmbedded(t *testing.T) {
	d := Embedded()

	trTop, trAll, en := d.Counts()
	if trTop != DefaultTopN {
		t.Errorf("embedded top tier has %d words, want %d", trTop, DefaultTopN)
	}
	if trAll <= trTop {
		t.Errorf("embedded full set (%d) should exceed the top tier (%d)", trAll, trTop)
	}
	if en == 0 {
		t.Error("embedded english set is empty")
	}

	for _, w := range []string{"bir", "bu", "ve"} {
		if !d.TurkishTop(w) {
			t.Errorf("embedded top tier missing %q", w)
		}
	}
	for _, w := range []string{"kitabı", "evde"} {
		if !d.Turkish(w) {
			t.Errorf("embedded turkish set missing %q", w)
		}
	}
	for _, w := range []string{"the", "selfie", "weekend"} {
		if !d.English(w) {
			t.Errorf("embedded english set missing %q", w)
		}
	}

	if d2 := Embedded(); d2 != d {
		t.Error("Embedded should return the shared value")
	}
}

func BenchmarkNew(b *testing.B) {
	for i := 0; i < b.N; i++ {
		New(data.TurkishFreq, data.EnglishFreq, DefaultTopN)
	}
}

func BenchmarkTurkishTop(b *testing.B) {
	d := Embedded()
	for i := 0; i < b.N; i++ {
		d.TurkishTop("bir")
	}
}
