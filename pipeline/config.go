package pipeline

import (
	"fmt"

	"github.com/bostanberkay/TREN/classify"
)

// Config selects the output rows and tunes the classifier. The zero
// value is a valid configuration with every row disabled; Default is the
// standard one.
type Config struct {
	// PerItem emits one <token>\t<LABEL> row per token.
	PerItem bool
	// Matrix emits the sentence MatrixLang row.
	Matrix bool
	// Embedded emits the sentence EmbedLang row.
	Embedded bool
	// SentenceID emits a SentenceID row with the 1-based sentence index.
	SentenceID bool

	// NER consults the named-entity provider for the NE override.
	NER bool

	// ENMin and TRMin are the identifier confidence floors for the
	// dictionary-miss path. Zero selects the default 0.80.
	ENMin float64
	TRMin float64

	// MixedStrict rejects mixed-token splits whose stem is a known
	// Turkish word.
	MixedStrict bool

	// EmitMixedSuffix appends a <stem>+<suffix> column to MIXED token
	// rows.
	EmitMixedSuffix bool

	// MixedTRWeight and MixedENWeight are the per-MIXED-token
	// contributions to the sentence matrix vote.
	MixedTRWeight float64
	MixedENWeight float64
}

// Default returns the standard configuration: all rows on, NER on,
// 0.80 confidence floors, strict mixed detection, 0.6/0.4 matrix vote
// weights, no suffix column.
func Default() Config {
	return Config{
		PerItem:       true,
		Matrix:        true,
		Embedded:      true,
		SentenceID:    true,
		NER:           true,
		ENMin:         classify.DefaultENMin,
		TRMin:         classify.DefaultTRMin,
		MixedStrict:   true,
		MixedTRWeight: classify.DefaultMixedTRWeight,
		MixedENWeight: classify.DefaultMixedENWeight,
	}
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	if c.ENMin < 0 || c.ENMin > 1 {
		return fmt.Errorf("pipeline: EN confidence floor %v outside [0, 1]", c.ENMin)
	}
	if c.TRMin < 0 || c.TRMin > 1 {
		return fmt.Errorf("pipeline: TR confidence floor %v outside [0, 1]", c.TRMin)
	}
	if c.MixedTRWeight < 0 {
		return fmt.Errorf("pipeline: negative TR mixed-vote weight %v", c.MixedTRWeight)
	}
	if c.MixedENWeight < 0 {
		return fmt.Errorf("pipeline: negative EN mixed-vote weight %v", c.MixedENWeight)
	}
	return nil
}
