// Package pipeline annotates Turkish-English code-switched text line by
// line.
//
// Input is one sentence per non-blank line; blank lines are sentence
// separators and pass through. For each sentence the Annotator emits an
// optional SentenceID row, one token row per token, and the sentence's
// matrix and embedded language rows, all tab separated, with one blank
// row closing the block:
//
//	SentenceID	3
//	bugün	TR
//	meeting	EN
//	selfie'yi	MIXED
//	MatrixLang	TR
//	EmbedLang	EN
//
// Two API layers are provided:
//
//   - Text: Annotate and AnnotateParallel return the output format as
//     one string; Preprocess produces the placeholder format used to
//     seed manual annotation.
//   - Structured: Sentences returns []Sentence with per-token labels
//     and the matrix decision, for callers that render their own
//     output.
//
// An Annotator is safe for concurrent use by multiple goroutines.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/bostanberkay/TREN/classify"
	"github.com/bostanberkay/TREN/dict"
	"github.com/bostanberkay/TREN/lid"
	"github.com/bostanberkay/TREN/ner"
	"github.com/bostanberkay/TREN/tokenizer"
)

// Item is one classified token of a sentence. Stem and Suffix are set
// only on MIXED items.
type Item struct {
	Token  string
	Label  classify.Label
	Stem   string
	Suffix string
}

// Sentence is one annotated input line.
type Sentence struct {
	// Index is the 1-based sentence number; blank lines do not count.
	Index    int
	Items    []Item
	Decision classify.MatrixDecision
}

// Options configures New. Nil fields select the defaults: the embedded
// frequency dictionaries, a cached whatlanggo identifier, and the
// serialized capitalization heuristic for entities.
type Options struct {
	Config     Config
	Dicts      *dict.Dictionaries
	Identifier lid.Identifier
	NER        ner.Provider
}

// Annotator runs the classification pipeline over input text.
type Annotator struct {
	cfg        Config
	classifier *classify.Classifier
	ner        ner.Provider
}

// New builds an Annotator. The configuration is validated and, when NER
// is enabled, the entity provider is readied, so a misconfigured or
// unloadable setup fails here rather than mid-run.
func New(opts Options) (*Annotator, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	dicts := opts.Dicts
	if dicts == nil {
		dicts = dict.Embedded()
	}
	id := opts.Identifier
	if id == nil {
		id = lid.NewCached(lid.Whatlang{}, 0)
	}
	provider := opts.NER
	if provider == nil {
		provider = ner.Serialize(ner.Heuristic{})
	}

	a := &Annotator{
		cfg: opts.Config,
		classifier: classify.New(dicts, id, classify.Params{
			ENMin:       opts.Config.ENMin,
			TRMin:       opts.Config.TRMin,
			MixedStrict: opts.Config.MixedStrict,
		}),
		ner: provider,
	}
	if a.cfg.NER {
		if err := provider.EnsureReady(); err != nil {
			return nil, fmt.Errorf("ner backend: %w", err)
		}
	}
	return a, nil
}

// Annotate classifies text and returns the line-oriented output format.
// A blank input line passes through as one blank output row without
// advancing the sentence counter.
func (a *Annotator) Annotate(text string) (string, error) {
	var rows []string
	index := 0
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			rows = append(rows, "")
			continue
		}
		index++
		s, err := a.classifyLine(line)
		if err != nil {
			return "", fmt.Errorf("sentence %d: %w", index, err)
		}
		s.Index = index
		rows = append(rows, a.renderSentence(s)...)
	}
	return strings.Join(rows, "\n"), nil
}

// Sentences classifies text and returns the structured annotation,
// skipping blank lines.
func (a *Annotator) Sentences(text string) ([]Sentence, error) {
	var out []Sentence
	for _, line := range splitLines(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		s, err := a.classifyLine(line)
		if err != nil {
			return nil, fmt.Errorf("sentence %d: %w", len(out)+1, err)
		}
		s.Index = len(out) + 1
		out = append(out, s)
	}
	return out, nil
}

// Preprocess converts raw text into the placeholder annotation format:
// every whitespace-separated token of a non-blank line becomes a
// <token>\tUID row, each sentence block ends with a blank row, and the
// result carries exactly one trailing newline.
func (a *Annotator) Preprocess(text string) string {
	var rows []string
	for _, line := range splitLines(text) {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			rows = append(rows, "")
			continue
		}
		for _, tok := range fields {
			rows = append(rows, tok+"\t"+classify.UID.String())
		}
		rows = append(rows, "")
	}
	joined := strings.Join(rows, "\n")
	return strings.TrimRight(joined, " \t\r\n") + "\n"
}

// classifyLine runs NER and the token classifier over one non-blank
// line. The caller assigns Sentence.Index.
func (a *Annotator) classifyLine(line string) (Sentence, error) {
	tokens := tokenizer.Tokenize(line)

	var neSet map[string]bool
	if a.cfg.NER {
		var err error
		neSet, err = a.entityTokens(line, tokens)
		if err != nil {
			return Sentence{}, fmt.Errorf("analyze entities: %w", err)
		}
	}

	s := Sentence{Items: make([]Item, 0, len(tokens))}
	labels := make([]classify.Label, 0, len(tokens))
	for _, tok := range tokens {
		r := a.classifier.Classify(tok.Text, neSet)
		s.Items = append(s.Items, Item{Token: tok.Text, Label: r.Label, Stem: r.Stem, Suffix: r.Suffix})
		switch r.Label {
		case classify.TR, classify.EN, classify.Mixed:
			labels = append(labels, r.Label)
		}
	}
	s.Decision = classify.DecideMatrixEmbed(labels, a.cfg.MixedTRWeight, a.cfg.MixedENWeight)
	return s, nil
}

// entityTokens reduces the provider's spans to the token membership set
// the classifier matches against: span texts are tokenized, lone
// apostrophes dropped, and the pieces intersected with the line's own
// tokens.
func (a *Annotator) entityTokens(line string, tokens []tokenizer.Token) (map[string]bool, error) {
	spans, err := a.ner.Analyze(line)
	if err != nil {
		return nil, err
	}
	if len(spans) == 0 {
		return nil, nil
	}

	pieces := make(map[string]bool)
	for _, sp := range spans {
		for _, pt := range tokenizer.Tokenize(sp.Text) {
			if pt.Type == tokenizer.Word {
				pieces[pt.Text] = true
			}
		}
	}

	neSet := make(map[string]bool, len(pieces))
	for _, tok := range tokens {
		if pieces[tok.Text] {
			neSet[tok.Text] = true
		}
	}
	return neSet, nil
}

// renderSentence produces the output rows for one sentence, including
// the closing blank row.
func (a *Annotator) renderSentence(s Sentence) []string {
	rows := make([]string, 0, len(s.Items)+4)
	if a.cfg.SentenceID {
		rows = append(rows, fmt.Sprintf("SentenceID\t%d", s.Index))
	}
	if a.cfg.PerItem {
		for _, it := range s.Items {
			row := it.Token + "\t" + it.Label.String()
			if a.cfg.EmitMixedSuffix && it.Label == classify.Mixed {
				row += "\t" + it.Stem + "+" + it.Suffix
			}
			rows = append(rows, row)
		}
	}
	if a.cfg.Matrix {
		rows = append(rows, "MatrixLang\t"+s.Decision.Matrix.String())
	}
	if a.cfg.Embedded {
		rows = append(rows, "EmbedLang\t"+s.Decision.EmbedString())
	}
	return append(rows, "")
}

// splitLines splits text into lines on \n, tolerating \r\n endings. A
// trailing newline does not produce a phantom final line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
