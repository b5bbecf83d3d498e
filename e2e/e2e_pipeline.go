//go:build ignore

// e2e_pipeline exercises every annotation stage in a single run and
// writes structured results to data/e2e_pipeline.log.
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/bostanberkay/TREN/classify"
	"github.com/bostanberkay/TREN/dict"
	"github.com/bostanberkay/TREN/internal/trcase"
	"github.com/bostanberkay/TREN/lid"
	"github.com/bostanberkay/TREN/morph"
	"github.com/bostanberkay/TREN/ner"
	"github.com/bostanberkay/TREN/normalize"
	"github.com/bostanberkay/TREN/pipeline"
	"github.com/bostanberkay/TREN/tokenizer"
)

// ---------- constants ----------

const (
	logPath      = "data/e2e_pipeline.log"
	maxDetailLen = 200
	concWorkers  = 8
	concIter     = 100
	separator    = "=========================================================="
	goldenDir    = "data/golden"
)

// ---------- test corpus ----------

const textCodeSwitched = `bugün meeting var`

const textTurkish = `bugün hava çok güzel ve ben eve gidiyorum`

const textEnglish = `the meeting starts today and we should join`

const textMultiLine = `bugün meeting var

deadline yarın ve ben hazır değilim
this is completely English`

const textRunning = `Toplantı sabah başladı. Herkes notlarını paylaştı ve karar verildi. Devam eden işler yarın görüşülecek.`

const textEntities = `Ahmet Bey yarın İstanbul'a gidiyor`

const textDegraded = `bugun cok guzel bir gun`

// ---------- types ----------

type testResult struct {
	name     string
	module   string
	passed   bool
	duration time.Duration
	detail   string
}

type moduleReport struct {
	name     string
	tests    int
	passed   int
	failed   int
	duration time.Duration
}

// ---------- helpers ----------

func pass(module, name string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: true, duration: time.Since(start)}
}

func fail(module, name, detail string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: false, duration: time.Since(start), detail: truncate(detail, maxDetailLen)}
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		n++
		if n > maxRunes {
			return s[:i] + "..."
		}
	}
	return s
}

func safeRun(module, name string, fn func() testResult) (r testResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(module, name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

func newAnnotator() (*pipeline.Annotator, error) {
	return pipeline.New(pipeline.Options{
		Config:     pipeline.Default(),
		Identifier: lid.NewCached(lid.Trigram{}, 0),
	})
}

// ---------- test suites ----------

func testFold() []testResult {
	const mod = "trcase"
	var results []testResult

	results = append(results, safeRun(mod, "dotted_dotless_i", func() testResult {
		start := time.Now()
		cases := []struct{ input, want string }{
			{"İstanbul", "istanbul"},
			{"IŞIK", "işik"},
			{"MEETING", "meeting"},
		}
		for _, c := range cases {
			if got := trcase.Fold(c.input); got != c.want {
				return fail(mod, "dotted_dotless_i", fmt.Sprintf("Fold(%q)=%q, want %q", c.input, got, c.want), start)
			}
		}
		return pass(mod, "dotted_dotless_i", start)
	}))

	results = append(results, safeRun(mod, "rune_count_preserved", func() testResult {
		start := time.Now()
		for _, s := range []string{"İstanbul", "TIŞÖRT", "ÇAĞRI", textTurkish} {
			in, out := utf8.RuneCountInString(s), utf8.RuneCountInString(trcase.Fold(s))
			if in != out {
				return fail(mod, "rune_count_preserved", fmt.Sprintf("Fold(%q): %d runes -> %d", s, in, out), start)
			}
		}
		return pass(mod, "rune_count_preserved", start)
	}))

	results = append(results, safeRun(mod, "idempotent", func() testResult {
		start := time.Now()
		once := trcase.Fold(textTurkish)
		if twice := trcase.Fold(once); twice != once {
			return fail(mod, "idempotent", fmt.Sprintf("Fold(Fold(x)) = %q != %q", twice, once), start)
		}
		return pass(mod, "idempotent", start)
	}))

	return results
}

func testTokenizer() []testResult {
	const mod = "tokenizer"
	var results []testResult

	results = append(results, safeRun(mod, "offset_invariant", func() testResult {
		start := time.Now()
		for _, text := range []string{textCodeSwitched, textTurkish, "selfie'yi çektim @burak"} {
			for _, t := range tokenizer.Tokenize(text) {
				if text[t.Start:t.End] != t.Text {
					return fail(mod, "offset_invariant",
						fmt.Sprintf("text[%d:%d]=%q != token.Text=%q", t.Start, t.End, text[t.Start:t.End], t.Text), start)
				}
			}
		}
		return pass(mod, "offset_invariant", start)
	}))

	results = append(results, safeRun(mod, "apostrophe_grammar", func() testResult {
		start := time.Now()
		words := tokenizer.Words("selfie'yi çektim")
		if len(words) != 2 || words[0] != "selfie'yi" {
			return fail(mod, "apostrophe_grammar", fmt.Sprintf("Words = %v, want [selfie'yi çektim]", words), start)
		}
		return pass(mod, "apostrophe_grammar", start)
	}))

	results = append(results, safeRun(mod, "clean_strips_edges", func() testResult {
		start := time.Now()
		cases := []struct{ input, want string }{
			{"#hashtag", "hashtag"},
			{"(word)", "word"},
			{"word...", "word"},
		}
		for _, c := range cases {
			if got := tokenizer.Clean(c.input); got != c.want {
				return fail(mod, "clean_strips_edges", fmt.Sprintf("Clean(%q)=%q, want %q", c.input, got, c.want), start)
			}
		}
		return pass(mod, "clean_strips_edges", start)
	}))

	results = append(results, safeRun(mod, "sentences_count", func() testResult {
		start := time.Now()
		sents := tokenizer.Sentences(textRunning)
		if len(sents) != 3 {
			return fail(mod, "sentences_count", fmt.Sprintf("Sentences = %d, want 3: %v", len(sents), sents), start)
		}
		return pass(mod, "sentences_count", start)
	}))

	return results
}

func testMorph() []testResult {
	const mod = "morph"
	var results []testResult

	results = append(results, safeRun(mod, "parse_reconstruction", func() testResult {
		start := time.Now()
		for _, suffix := range []string{"de", "lerden", "yi", "im", "lerimizde"} {
			p := morph.ParseSuffix(suffix)
			var sb strings.Builder
			for _, seg := range p.Segments {
				sb.WriteString(seg.Surface)
			}
			if sb.String() != suffix {
				return fail(mod, "parse_reconstruction",
					fmt.Sprintf("ParseSuffix(%q) segments rebuild %q", suffix, sb.String()), start)
			}
		}
		return pass(mod, "parse_reconstruction", start)
	}))

	results = append(results, safeRun(mod, "locative_tags", func() testResult {
		start := time.Now()
		p := morph.ParseSuffix("de")
		if !p.Analyzed() {
			return fail(mod, "locative_tags", `ParseSuffix("de") not analyzed`, start)
		}
		found := false
		for _, tag := range p.Inflection {
			if tag == "Case=Loc" {
				found = true
			}
		}
		if !found {
			return fail(mod, "locative_tags", fmt.Sprintf("tags %v missing Case=Loc", p.Inflection), start)
		}
		return pass(mod, "locative_tags", start)
	}))

	results = append(results, safeRun(mod, "known_suffixes_ordered", func() testResult {
		start := time.Now()
		known := morph.KnownSuffixes()
		if len(known) == 0 {
			return fail(mod, "known_suffixes_ordered", "KnownSuffixes is empty", start)
		}
		for i := 1; i < len(known); i++ {
			if utf8.RuneCountInString(known[i]) > utf8.RuneCountInString(known[i-1]) {
				return fail(mod, "known_suffixes_ordered",
					fmt.Sprintf("%q after %q breaks length order", known[i], known[i-1]), start)
			}
		}
		return pass(mod, "known_suffixes_ordered", start)
	}))

	return results
}

func testDict() []testResult {
	const mod = "dict"
	var results []testResult

	d := dict.Embedded()

	results = append(results, safeRun(mod, "embedded_loaded", func() testResult {
		start := time.Now()
		trTop, trAll, en := d.Counts()
		if trTop == 0 || trAll == 0 || en == 0 {
			return fail(mod, "embedded_loaded", fmt.Sprintf("counts %d/%d/%d", trTop, trAll, en), start)
		}
		if trTop > trAll {
			return fail(mod, "embedded_loaded", fmt.Sprintf("top tier %d larger than full set %d", trTop, trAll), start)
		}
		return pass(mod, "embedded_loaded", start)
	}))

	results = append(results, safeRun(mod, "membership", func() testResult {
		start := time.Now()
		if !d.Turkish("ev") {
			return fail(mod, "membership", `Turkish("ev") false`, start)
		}
		if !d.English("meeting") {
			return fail(mod, "membership", `English("meeting") false`, start)
		}
		if d.Turkish("meeting") {
			return fail(mod, "membership", `Turkish("meeting") true`, start)
		}
		return pass(mod, "membership", start)
	}))

	return results
}

func testLID() []testResult {
	const mod = "lid"
	var results []testResult

	results = append(results, safeRun(mod, "trigram_predictions", func() testResult {
		start := time.Now()
		tri := lid.Trigram{}
		if p := tri.Predict("tişört"); p.Lang != "TR" {
			return fail(mod, "trigram_predictions", fmt.Sprintf("tişört -> %+v, want TR", p), start)
		}
		if p := tri.Predict("the"); p.Lang != "EN" {
			return fail(mod, "trigram_predictions", fmt.Sprintf("the -> %+v, want EN", p), start)
		}
		return pass(mod, "trigram_predictions", start)
	}))

	results = append(results, safeRun(mod, "cache_consistency", func() testResult {
		start := time.Now()
		cached := lid.NewCached(lid.Trigram{}, 16)
		first := cached.Predict("station")
		second := cached.Predict("station")
		if first != second {
			return fail(mod, "cache_consistency", fmt.Sprintf("%+v != %+v", first, second), start)
		}
		if cached.Len() != 1 {
			return fail(mod, "cache_consistency", fmt.Sprintf("Len = %d, want 1", cached.Len()), start)
		}
		return pass(mod, "cache_consistency", start)
	}))

	results = append(results, safeRun(mod, "snapshot_roundtrip", func() testResult {
		start := time.Now()
		dir, err := os.MkdirTemp("", "tren-e2e")
		if err != nil {
			return fail(mod, "snapshot_roundtrip", err.Error(), start)
		}
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "lid.cache")

		cached := lid.NewCached(lid.Trigram{}, 16)
		want := cached.Predict("weekend")
		if err := cached.SaveFile(path); err != nil {
			return fail(mod, "snapshot_roundtrip", fmt.Sprintf("save: %v", err), start)
		}
		warm := lid.NewCached(lid.Trigram{}, 16)
		if err := warm.LoadFile(path); err != nil {
			return fail(mod, "snapshot_roundtrip", fmt.Sprintf("load: %v", err), start)
		}
		if warm.Len() != 1 {
			return fail(mod, "snapshot_roundtrip", fmt.Sprintf("warm Len = %d, want 1", warm.Len()), start)
		}
		if got := warm.Predict("weekend"); got != want {
			return fail(mod, "snapshot_roundtrip", fmt.Sprintf("warm predict %+v, want %+v", got, want), start)
		}
		return pass(mod, "snapshot_roundtrip", start)
	}))

	return results
}

func testClassify() []testResult {
	const mod = "classify"
	var results []testResult

	clf := classify.New(nil, lid.Trigram{}, classify.DefaultParams())

	results = append(results, safeRun(mod, "token_labels", func() testResult {
		start := time.Now()
		cases := []struct {
			token string
			want  classify.Label
		}{
			{"ev", classify.TR},
			{"meeting", classify.EN},
			{"meetingde", classify.Mixed},
			{"@burak", classify.Other},
			{"https://example.com", classify.Other},
			{"42", classify.Other},
		}
		for _, c := range cases {
			if got := clf.Classify(c.token, nil).Label; got != c.want {
				return fail(mod, "token_labels", fmt.Sprintf("Classify(%q) = %v, want %v", c.token, got, c.want), start)
			}
		}
		return pass(mod, "token_labels", start)
	}))

	results = append(results, safeRun(mod, "mixed_split", func() testResult {
		start := time.Now()
		r := clf.Classify("selfie'yi", nil)
		if r.Label != classify.Mixed || r.Stem != "selfie" || r.Suffix != "yi" {
			return fail(mod, "mixed_split", fmt.Sprintf("selfie'yi -> %+v", r), start)
		}
		return pass(mod, "mixed_split", start)
	}))

	results = append(results, safeRun(mod, "contraction_guard", func() testResult {
		start := time.Now()
		r := clf.Classify("it's", nil)
		if r.Label == classify.Mixed {
			return fail(mod, "contraction_guard", "it's split as a mixed token", start)
		}
		return pass(mod, "contraction_guard", start)
	}))

	results = append(results, safeRun(mod, "matrix_vote", func() testResult {
		start := time.Now()
		d := classify.DecideMatrixEmbed(
			[]classify.Label{classify.TR, classify.TR, classify.EN},
			classify.DefaultMixedTRWeight, classify.DefaultMixedENWeight)
		if d.Matrix != classify.TR || !d.HasEmbed || d.Embed != classify.EN {
			return fail(mod, "matrix_vote", fmt.Sprintf("decision %+v", d), start)
		}
		return pass(mod, "matrix_vote", start)
	}))

	return results
}

func testNER() []testResult {
	const mod = "ner"
	var results []testResult

	provider := ner.Serialize(ner.Heuristic{})

	results = append(results, safeRun(mod, "capitalized_runs", func() testResult {
		start := time.Now()
		spans, err := provider.Analyze(textEntities)
		if err != nil {
			return fail(mod, "capitalized_runs", err.Error(), start)
		}
		if len(spans) != 2 {
			return fail(mod, "capitalized_runs", fmt.Sprintf("spans = %v, want 2", spans), start)
		}
		if spans[0].Text != "Ahmet Bey" || spans[1].Text != "İstanbul'a" {
			return fail(mod, "capitalized_runs", fmt.Sprintf("spans = %v", spans), start)
		}
		return pass(mod, "capitalized_runs", start)
	}))

	results = append(results, safeRun(mod, "offset_invariant", func() testResult {
		start := time.Now()
		spans, err := provider.Analyze(textEntities)
		if err != nil {
			return fail(mod, "offset_invariant", err.Error(), start)
		}
		for _, sp := range spans {
			if textEntities[sp.Start:sp.End] != sp.Text {
				return fail(mod, "offset_invariant",
					fmt.Sprintf("text[%d:%d] != %q", sp.Start, sp.End, sp.Text), start)
			}
		}
		return pass(mod, "offset_invariant", start)
	}))

	return results
}

func testNormalize() []testResult {
	const mod = "normalize"
	var results []testResult

	r := normalize.New(nil)

	results = append(results, safeRun(mod, "restore_degraded", func() testResult {
		start := time.Now()
		out := r.Normalize(textDegraded)
		if !strings.Contains(out, "bugün") || !strings.Contains(out, "çok") {
			return fail(mod, "restore_degraded", fmt.Sprintf("Normalize(%q) = %q", textDegraded, out), start)
		}
		return pass(mod, "restore_degraded", start)
	}))

	results = append(results, safeRun(mod, "idempotent", func() testResult {
		start := time.Now()
		if out := r.Normalize(textTurkish); out != textTurkish {
			return fail(mod, "idempotent", fmt.Sprintf("changed correct text: %q", out), start)
		}
		return pass(mod, "idempotent", start)
	}))

	return results
}

func testPipeline() []testResult {
	const mod = "pipeline"
	var results []testResult

	ann, err := newAnnotator()
	if err != nil {
		return []testResult{fail(mod, "construct", err.Error(), time.Now())}
	}

	results = append(results, safeRun(mod, "code_switched_rows", func() testResult {
		start := time.Now()
		out, err := ann.Annotate(textCodeSwitched)
		if err != nil {
			return fail(mod, "code_switched_rows", err.Error(), start)
		}
		for _, row := range []string{"SentenceID\t1", "bugün\tTR", "meeting\tEN", "MatrixLang\tTR", "EmbedLang\tEN"} {
			if !strings.Contains(out, row) {
				return fail(mod, "code_switched_rows", fmt.Sprintf("output missing %q:\n%s", row, out), start)
			}
		}
		return pass(mod, "code_switched_rows", start)
	}))

	results = append(results, safeRun(mod, "blank_line_passthrough", func() testResult {
		start := time.Now()
		out, err := ann.Annotate(textMultiLine)
		if err != nil {
			return fail(mod, "blank_line_passthrough", err.Error(), start)
		}
		if !strings.Contains(out, "SentenceID\t3") {
			return fail(mod, "blank_line_passthrough", "blank line advanced the sentence counter", start)
		}
		return pass(mod, "blank_line_passthrough", start)
	}))

	results = append(results, safeRun(mod, "parallel_matches_serial", func() testResult {
		start := time.Now()
		serial, err := ann.Annotate(textMultiLine)
		if err != nil {
			return fail(mod, "parallel_matches_serial", err.Error(), start)
		}
		parallel, err := ann.AnnotateParallel(textMultiLine, 4)
		if err != nil {
			return fail(mod, "parallel_matches_serial", err.Error(), start)
		}
		if serial != parallel {
			return fail(mod, "parallel_matches_serial", "outputs differ", start)
		}
		return pass(mod, "parallel_matches_serial", start)
	}))

	results = append(results, safeRun(mod, "preprocess_placeholders", func() testResult {
		start := time.Now()
		out := ann.Preprocess(textCodeSwitched)
		want := "bugün\tUID\nmeeting\tUID\nvar\tUID\n"
		if out != want {
			return fail(mod, "preprocess_placeholders", fmt.Sprintf("got %q, want %q", out, want), start)
		}
		return pass(mod, "preprocess_placeholders", start)
	}))

	results = append(results, safeRun(mod, "monolingual_no_embed", func() testResult {
		start := time.Now()
		sents, err := ann.Sentences(textEnglish)
		if err != nil {
			return fail(mod, "monolingual_no_embed", err.Error(), start)
		}
		if len(sents) != 1 {
			return fail(mod, "monolingual_no_embed", fmt.Sprintf("sentences = %d, want 1", len(sents)), start)
		}
		d := sents[0].Decision
		if d.Matrix != classify.EN || d.HasEmbed {
			return fail(mod, "monolingual_no_embed", fmt.Sprintf("decision %+v, want pure EN", d), start)
		}
		return pass(mod, "monolingual_no_embed", start)
	}))

	results = append(results, safeRun(mod, "structured_sentences", func() testResult {
		start := time.Now()
		sents, err := ann.Sentences(textMultiLine)
		if err != nil {
			return fail(mod, "structured_sentences", err.Error(), start)
		}
		if len(sents) != 3 {
			return fail(mod, "structured_sentences", fmt.Sprintf("sentences = %d, want 3", len(sents)), start)
		}
		if sents[2].Decision.Matrix != classify.EN {
			return fail(mod, "structured_sentences",
				fmt.Sprintf("english sentence matrix = %v", sents[2].Decision.Matrix), start)
		}
		return pass(mod, "structured_sentences", start)
	}))

	return results
}

func testConcurrent() []testResult {
	const mod = "concurrent"
	var results []testResult

	results = append(results, safeRun(mod, "all_stages_8_goroutines_x100", func() testResult {
		start := time.Now()
		ann, err := newAnnotator()
		if err != nil {
			return fail(mod, "all_stages_8_goroutines_x100", err.Error(), start)
		}
		clf := classify.New(nil, lid.NewCached(lid.Trigram{}, 0), classify.DefaultParams())
		restorer := normalize.New(nil)

		var panics atomic.Int64
		var wg sync.WaitGroup
		for range concWorkers {
			wg.Go(func() {
				for range concIter {
					func() {
						defer func() {
							if p := recover(); p != nil {
								panics.Add(1)
							}
						}()
						trcase.Fold(textTurkish)
						tokenizer.Tokenize(textCodeSwitched)
						morph.ParseSuffix("lerden")
						clf.Classify("meetingde", nil)
						restorer.NormalizeWord("bugun")
						_, _ = ann.Annotate(textMultiLine)
					}()
				}
			})
		}
		wg.Wait()

		if n := panics.Load(); n > 0 {
			return fail(mod, "all_stages_8_goroutines_x100", fmt.Sprintf("%d panics detected", n), start)
		}
		return pass(mod, "all_stages_8_goroutines_x100", start)
	}))

	return results
}

// ---------- corpus helpers ----------

// goldenCase is one pinned input/output pair of a golden JSON file.
type goldenCase struct {
	Name        string `json:"name"`
	Input       string `json:"input"`
	Annotated   string `json:"annotated"`
	Placeholder string `json:"placeholder"`
}

// loadGoldenCases reads every golden JSON file under data/golden.
func loadGoldenCases() ([]goldenCase, error) {
	files, err := filepath.Glob(filepath.Join(goldenDir, "*.json"))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no golden files found in %s", goldenDir)
	}

	var cases []goldenCase
	for _, f := range files {
		raw, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		var entries []goldenCase
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", f, err)
		}
		cases = append(cases, entries...)
	}
	return cases, nil
}

func testCorpus() []testResult {
	const mod = "corpus"
	var results []testResult

	cases, err := loadGoldenCases()
	if err != nil {
		return []testResult{fail(mod, "load_golden_cases", err.Error(), time.Now())}
	}

	ann, err := newAnnotator()
	if err != nil {
		return []testResult{fail(mod, "construct", err.Error(), time.Now())}
	}

	results = append(results, safeRun(mod, "load_golden_cases", func() testResult {
		start := time.Now()
		if len(cases) == 0 {
			return fail(mod, "load_golden_cases", "no cases found", start)
		}
		log.Printf("  corpus: %d golden cases", len(cases))
		return pass(mod, "load_golden_cases", start)
	}))

	results = append(results, safeRun(mod, "golden_annotate", func() testResult {
		start := time.Now()
		for _, tc := range cases {
			got, err := ann.Annotate(tc.Input)
			if err != nil {
				return fail(mod, "golden_annotate", fmt.Sprintf("%s: %v", tc.Name, err), start)
			}
			if got != tc.Annotated {
				return fail(mod, "golden_annotate",
					fmt.Sprintf("%s: got %q, want %q", tc.Name, got, tc.Annotated), start)
			}
		}
		return pass(mod, "golden_annotate", start)
	}))

	results = append(results, safeRun(mod, "golden_placeholder", func() testResult {
		start := time.Now()
		for _, tc := range cases {
			if got := ann.Preprocess(tc.Input); got != tc.Placeholder {
				return fail(mod, "golden_placeholder",
					fmt.Sprintf("%s: got %q, want %q", tc.Name, got, tc.Placeholder), start)
			}
		}
		return pass(mod, "golden_placeholder", start)
	}))

	results = append(results, safeRun(mod, "parallel_full_corpus", func() testResult {
		start := time.Now()
		var inputs []string
		for _, tc := range cases {
			inputs = append(inputs, tc.Input)
		}
		corpus := strings.Join(inputs, "\n")

		serial, err := ann.Annotate(corpus)
		if err != nil {
			return fail(mod, "parallel_full_corpus", err.Error(), start)
		}
		parallel, err := ann.AnnotateParallel(corpus, concWorkers)
		if err != nil {
			return fail(mod, "parallel_full_corpus", err.Error(), start)
		}
		if serial != parallel {
			return fail(mod, "parallel_full_corpus", "parallel output differs from serial", start)
		}
		return pass(mod, "parallel_full_corpus", start)
	}))

	return results
}

// ---------- orchestration ----------

func runAllSuites() []testResult {
	suites := []func() []testResult{
		testFold,
		testTokenizer,
		testMorph,
		testDict,
		testLID,
		testClassify,
		testNER,
		testNormalize,
		testPipeline,
		testConcurrent,
		testCorpus,
	}

	var all []testResult
	for _, suite := range suites {
		all = append(all, suite()...)
	}
	return all
}

func buildReports(results []testResult) []moduleReport {
	order := make(map[string]int)
	var reports []moduleReport

	for _, r := range results {
		idx, exists := order[r.module]
		if !exists {
			idx = len(reports)
			order[r.module] = idx
			reports = append(reports, moduleReport{name: r.module})
		}
		reports[idx].tests++
		reports[idx].duration += r.duration
		if r.passed {
			reports[idx].passed++
		} else {
			reports[idx].failed++
		}
	}
	return reports
}

func writeLog(path string, results []testResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  TREN E2E Pipeline Test")
	fmt.Fprintf(bw, "  Timestamp: %s\n", time.Now().UTC().Format(time.RFC3339))
	fmt.Fprintf(bw, "  Go: %s  OS: %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	reports := buildReports(results)
	var totalDuration time.Duration
	for _, rep := range reports {
		totalDuration += rep.duration
	}

	for _, rep := range reports {
		fmt.Fprintf(bw, "[%s] %d tests | %d passed | %d failed | %s\n",
			rep.name, rep.tests, rep.passed, rep.failed, rep.duration.Round(time.Microsecond))
		for _, r := range results {
			if r.module != rep.name {
				continue
			}
			status := "PASS"
			if !r.passed {
				status = "FAIL"
			}
			fmt.Fprintf(bw, "  %-6s %-45s %s\n", status, r.name, r.duration.Round(time.Microsecond))
		}
		fmt.Fprintln(bw)
	}

	var failures []testResult
	for _, r := range results {
		if !r.passed {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		fmt.Fprintln(bw, "--- FAILURES ---")
		for _, r := range failures {
			fmt.Fprintf(bw, "  FAIL  [%s] %-40s %s\n", r.module, r.name, r.duration.Round(time.Microsecond))
			if r.detail != "" {
				for line := range strings.SplitSeq(r.detail, "\n") {
					fmt.Fprintf(bw, "        %s\n", line)
				}
			}
		}
		fmt.Fprintln(bw)
	}

	totalPassed, totalFailed := 0, 0
	for _, r := range results {
		if r.passed {
			totalPassed++
		} else {
			totalFailed++
		}
	}

	fmt.Fprintln(bw, separator)
	fmt.Fprintf(bw, "  SUMMARY: %d tests | %d passed | %d failed | %s\n",
		len(results), totalPassed, totalFailed, totalDuration.Round(time.Microsecond))
	fmt.Fprintln(bw, separator)

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printSummary(results []testResult) {
	reports := buildReports(results)
	totalPassed := 0
	totalFailed := 0
	var totalDuration time.Duration

	for _, rep := range reports {
		totalPassed += rep.passed
		totalFailed += rep.failed
		totalDuration += rep.duration

		status := "OK"
		if rep.failed > 0 {
			status = "FAIL"
		}
		log.Printf("  %-12s %d/%d %s", rep.name, rep.passed, rep.tests, status)
	}

	log.Printf("")
	log.Printf("  %d tests | %d passed | %d failed | %s",
		len(results), totalPassed, totalFailed, totalDuration.Round(time.Microsecond))

	for _, r := range results {
		if !r.passed {
			log.Printf("  FAIL [%s] %s: %s", r.module, r.name, r.detail)
		}
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[e2e] ")

	log.Printf("starting E2E pipeline test")
	totalStart := time.Now()

	results := runAllSuites()

	log.Printf("completed in %s", time.Since(totalStart).Round(time.Microsecond))
	log.Printf("")

	printSummary(results)

	if err := writeLog(logPath, results); err != nil {
		log.Fatalf("cannot write log: %v", err)
	}
	log.Printf("log written to %s", logPath)

	for _, r := range results {
		if !r.passed {
			os.Exit(1)
		}
	}
}
