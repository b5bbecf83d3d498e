//go:build ignore

// buildfreq regenerates the starter frequency lists data/tr_freq.txt and
// data/en_freq.txt from plain-text corpora. Run from the project root:
//
//	go run scripts/buildfreq.go
//
// Output format: one entry per line, "word frequency\n", sorted descending
// by frequency. Line rank defines the dictionary's top-N tier, so the
// descending order is part of the format, not cosmetics.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"unicode"

	"github.com/bostanberkay/TREN/internal/trcase"
	"github.com/bostanberkay/TREN/tokenizer"
)

const (
	minFreq        = 2
	maxEntries     = 20000
	scannerBufSize = 4 * 1024 * 1024 // 4 MB — handles very long lines
)

// job pairs a corpus with the frequency list built from it.
type job struct {
	lang   string
	corpus string
	output string
}

var jobs = []job{
	{lang: "tr", corpus: "data/corpus/tr/sentences.txt", output: "data/tr_freq.txt"},
	{lang: "en", corpus: "data/corpus/en/sentences.txt", output: "data/en_freq.txt"},
}

type freqEntry struct {
	word string
	freq int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[buildfreq] ")

	for _, j := range jobs {
		freq := make(map[string]int, 1<<16)
		n, err := processCorpus(j.corpus, freq)
		if err != nil {
			log.Printf("warning: skipping %s corpus %q: %v", j.lang, j.corpus, err)
			continue
		}
		log.Printf("%s: processed %d lines from %s", j.lang, n, j.corpus)

		entries := collect(freq)
		if err := writeOutput(j.output, entries); err != nil {
			log.Fatalf("cannot write %s: %v", j.output, err)
		}
		log.Printf("%s: wrote %d entries to %s", j.lang, len(entries), j.output)
	}
}

// processCorpus reads a plain-text corpus file line by line, tokenizes
// each line, and accumulates folded word frequencies into freq.
// Returns the number of lines processed.
func processCorpus(path string, freq map[string]int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	buf := make([]byte, scannerBufSize)
	sc.Buffer(buf, scannerBufSize)

	lines := 0
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		for _, w := range tokenizer.Words(line) {
			folded := trcase.Fold(w)
			if !lettersOnly(folded) {
				continue
			}
			freq[folded]++
		}
		lines++
		if lines%100_000 == 0 {
			fmt.Fprintf(os.Stderr, "[buildfreq] %s: %d lines processed\n", path, lines)
		}
	}
	return lines, sc.Err()
}

// lettersOnly rejects tokens carrying digits, underscores, or apostrophe
// clitics; the lists hold bare dictionary forms.
func lettersOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

// collect filters the counts and sorts them descending by frequency,
// then alphabetically for stability.
func collect(freq map[string]int) []freqEntry {
	entries := make([]freqEntry, 0, len(freq))
	for word, f := range freq {
		if f >= minFreq {
			entries = append(entries, freqEntry{word, f})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].freq != entries[j].freq {
			return entries[i].freq > entries[j].freq
		}
		return entries[i].word < entries[j].word
	})
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}
	return entries
}

// writeOutput writes sorted frequency entries to path.
func writeOutput(path string, entries []freqEntry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, 4*1024*1024)
	for _, e := range entries {
		fmt.Fprintf(bw, "%s %d\n", e.word, e.freq)
	}
	return bw.Flush()
}
