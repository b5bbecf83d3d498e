//go:build ignore

// evalclassify evaluates the token classifier against the labeled token
// set and finds candidate words for frequency-list expansion. Run from
// the project root:
//
//	go run scripts/evalclassify.go
//
// Outputs:
//   - data/dict_candidates.tsv — misclassified TR/EN tokens missing from
//     the frequency lists, sorted by occurrence count
//   - data/eval_report.txt — human-readable evaluation report
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/bostanberkay/TREN/classify"
	"github.com/bostanberkay/TREN/dict"
	"github.com/bostanberkay/TREN/internal/trcase"
	"github.com/bostanberkay/TREN/lid"
)

const (
	tokensPath     = "data/eval/tokens.tsv"
	candidatesPath = "data/dict_candidates.tsv"
	reportPath     = "data/eval_report.txt"
	scannerBufSize = 4 * 1024 * 1024
	maxCandidates  = 500
	numLabels      = 6 // UID, TR, EN, MIXED, NE, OTHER
)

// sample is one labeled token of the evaluation set.
type sample struct {
	token string
	gold  classify.Label
}

// candidate is a word whose addition to a frequency list would fix
// observed misclassifications.
type candidate struct {
	word  string
	gold  classify.Label
	got   classify.Label
	count int
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[evalclassify] ")

	samples, err := loadSamples(tokensPath)
	if err != nil {
		log.Fatalf("cannot load token set: %v", err)
	}
	log.Printf("loaded %d labeled tokens from %s", len(samples), tokensPath)

	dicts := dict.Embedded()
	clf := classify.New(dicts, lid.Trigram{}, classify.DefaultParams())

	// Rows: gold label; columns: predicted label.
	var confusion [numLabels][numLabels]int
	misses := make(map[string]*candidate, 64)
	for _, s := range samples {
		got := clf.Classify(s.token, nil).Label
		confusion[s.gold][got]++
		if got == s.gold {
			continue
		}

		// Only dictionary-fixable misses become candidates: a TR or EN
		// gold token whose folded form the matching list does not carry.
		folded := trcase.Fold(s.token)
		switch s.gold {
		case classify.TR:
			if dicts.Turkish(folded) {
				continue
			}
		case classify.EN:
			if dicts.English(folded) {
				continue
			}
		default:
			continue
		}
		key := folded + "\t" + s.gold.String()
		c, ok := misses[key]
		if !ok {
			c = &candidate{word: folded, gold: s.gold, got: got}
			misses[key] = c
		}
		c.count++
	}

	candidates := make([]candidate, 0, len(misses))
	for _, c := range misses {
		candidates = append(candidates, *c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].word < candidates[j].word
	})
	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	log.Printf("found %d expansion candidates", len(candidates))

	if err := writeCandidates(candidatesPath, candidates); err != nil {
		log.Fatalf("cannot write candidates: %v", err)
	}
	log.Printf("wrote candidates to %s", candidatesPath)

	if err := writeReport(reportPath, confusion, candidates, len(samples)); err != nil {
		log.Fatalf("cannot write report: %v", err)
	}
	log.Printf("wrote report to %s", reportPath)
}

// loadSamples reads tab-separated "token\tLABEL" lines. Lines starting
// with # and empty lines are ignored.
func loadSamples(path string) ([]sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	buf := make([]byte, scannerBufSize)
	sc.Buffer(buf, scannerBufSize)

	var samples []sample
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%s:%d: want token\\tLABEL, got %q", path, lineNum, line)
		}
		gold, ok := parseLabel(strings.TrimSpace(parts[1]))
		if !ok {
			return nil, fmt.Errorf("%s:%d: unknown label %q", path, lineNum, parts[1])
		}
		samples = append(samples, sample{token: parts[0], gold: gold})
	}
	return samples, sc.Err()
}

// parseLabel maps an output-format label name to its Label value.
func parseLabel(s string) (classify.Label, bool) {
	switch s {
	case "UID":
		return classify.UID, true
	case "TR":
		return classify.TR, true
	case "EN":
		return classify.EN, true
	case "MIXED":
		return classify.Mixed, true
	case "NE":
		return classify.NE, true
	case "OTHER":
		return classify.Other, true
	}
	return 0, false
}

// displayOrder lists the labels in report order.
var displayOrder = []classify.Label{
	classify.TR, classify.EN, classify.Mixed, classify.NE, classify.Other, classify.UID,
}

// writeCandidates writes the expansion candidates to a TSV file.
func writeCandidates(path string, candidates []candidate) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, 512*1024)
	fmt.Fprintln(bw, "# Frequency-list expansion candidates — generated by evalclassify.go")
	fmt.Fprintln(bw, "# word\tgold\tpredicted\tcount")
	for _, c := range candidates {
		fmt.Fprintf(bw, "%s\t%s\t%s\t%d\n", c.word, c.gold, c.got, c.count)
	}
	return bw.Flush()
}

// writeReport writes the human-readable evaluation report.
func writeReport(path string, confusion [numLabels][numLabels]int, candidates []candidate, total int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bw := bufio.NewWriterSize(f, 512*1024)

	fmt.Fprintln(bw, "Token Classifier Evaluation Report")
	fmt.Fprintln(bw, "==================================")
	fmt.Fprintf(bw, "Dataset: %d labeled tokens\n", total)
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "Confusion Matrix:")
	fmt.Fprint(bw, "            Predicted\n            ")
	for _, lb := range displayOrder {
		fmt.Fprintf(bw, "%6s", lb)
	}
	fmt.Fprintln(bw)
	for i, row := range displayOrder {
		header := "      "
		if i == 0 {
			header = "Actual"
		}
		fmt.Fprintf(bw, "%s %-5s", header, row)
		for _, col := range displayOrder {
			fmt.Fprintf(bw, "%6d", confusion[row][col])
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	correct := 0
	for i := range numLabels {
		correct += confusion[i][i]
	}
	accuracy := 0.0
	if total > 0 {
		accuracy = float64(correct) / float64(total) * 100
	}
	fmt.Fprintf(bw, "Accuracy: %.2f%%\n", accuracy)

	for _, lb := range displayOrder {
		tp := confusion[lb][lb]
		var fpSum, fnSum int
		for i := range numLabels {
			if i != int(lb) {
				fpSum += confusion[i][lb]
				fnSum += confusion[lb][i]
			}
		}
		if tp+fpSum+fnSum == 0 {
			continue // label absent from the dataset and the predictions
		}
		p := precision(tp, fpSum)
		r := recall(tp, fnSum)
		fmt.Fprintf(bw, "%-5s: P=%.2f R=%.2f F1=%.2f\n", lb, p, r, f1score(p, r))
	}

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "Top 20 candidates:")
	fmt.Fprintf(bw, "%-20s %6s %10s %6s\n", "word", "gold", "predicted", "count")
	limit := min(20, len(candidates))
	for _, c := range candidates[:limit] {
		fmt.Fprintf(bw, "%-20s %6s %10s %6d\n", c.word, c.gold, c.got, c.count)
	}

	return bw.Flush()
}

func precision(tp, fp int) float64 {
	if tp+fp == 0 {
		return 0
	}
	return float64(tp) / float64(tp+fp)
}

func recall(tp, fn int) float64 {
	if tp+fn == 0 {
		return 0
	}
	return float64(tp) / float64(tp+fn)
}

func f1score(p, r float64) float64 {
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}
