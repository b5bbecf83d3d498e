// Package dict provides the tiered frequency dictionaries the token
// classifier consults before falling back to statistical language
// identification.
//
// A Dictionaries value holds three membership sets built from two
// frequency lists: the top-N tier of the Turkish list, the full Turkish
// list, and the English list. Lists are "word count" lines; the count is
// ignored, so bare one-column lists parse the same way. Words are folded
// on load, and lookups expect folded input.
//
// The top-N cutoff counts raw lines, not parsed words: blank or
// malformed lines consume rank slots. Lists are ranked by descending
// frequency, which makes the cutoff a frequency tier.
//
// Dictionaries are immutable after construction and safe for concurrent
// use by multiple goroutines.
package dict

import (
	"bytes"
	"sync"

	"github.com/bostanberkay/TREN/data"
	"github.com/bostanberkay/TREN/internal/trcase"
)

// DefaultTopN is the size of the high-confidence Turkish tier.
const DefaultTopN = 1000

// Dictionaries holds the three membership sets.
type Dictionaries struct {
	trTop map[string]struct{}
	trAll map[string]struct{}
	en    map[string]struct{}
}

// New builds the membership sets from raw frequency-list bytes. The first
// topN lines of the Turkish list form the top tier.
func New(turkish, english []byte, topN int) *Dictionaries {
	trLines := bytes.Split(turkish, []byte("\n"))
	enLines := bytes.Split(english, []byte("\n"))

	d := &Dictionaries{
		trTop: make(map[string]struct{}, min(topN, len(trLines))),
		trAll: make(map[string]struct{}, len(trLines)),
		en:    make(map[string]struct{}, len(enLines)),
	}

	for i, line := range trLines {
		fields := bytes.Fields(line)
		if len(fields) == 0 {
			continue
		}
		w := trcase.Fold(string(fields[0]))
		d.trAll[w] = struct{}{}
		if i < topN {
			d.trTop[w] = struct{}{}
		}
	}

	for _, line := range enLines {
		fields := bytes.Fields(line)
		if len(fields) == 0 {
			continue
		}
		d.en[trcase.Fold(string(fields[0]))] = struct{}{}
	}

	return d
}

// TurkishTop reports whether the folded word is in the Turkish top tier.
func (d *Dictionaries) TurkishTop(word string) bool {
	_, ok := d.trTop[word]
	return ok
}

// Turkish reports whether the folded word is in the full Turkish list.
func (d *Dictionaries) Turkish(word string) bool {
	_, ok := d.trAll[word]
	return ok
}

// English reports whether the folded word is in the English list.
func (d *Dictionaries) English(word string) bool {
	_, ok := d.en[word]
	return ok
}

// Counts returns the sizes of the Turkish top tier, the full Turkish set,
// and the English set.
func (d *Dictionaries) Counts() (trTop, trAll, en int) {
	return len(d.trTop), len(d.trAll), len(d.en)
}

var (
	embeddedOnce sync.Once
	embedded     *Dictionaries
)

// Embedded returns the dictionaries built from the compiled-in starter
// lists with DefaultTopN. The value is built once and shared.
func Embedded() *Dictionaries {
	embeddedOnce.Do(func() {
		embedded = New(data.TurkishFreq, data.EnglishFreq, DefaultTopN)
	})
	return embedded
}
