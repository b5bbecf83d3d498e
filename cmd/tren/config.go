package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/bostanberkay/TREN/classify"
	"github.com/bostanberkay/TREN/data"
	"github.com/bostanberkay/TREN/dict"
	"github.com/bostanberkay/TREN/lid"
	"github.com/bostanberkay/TREN/pipeline"
)

// defaultConfigName is picked up from the working directory when
// --config is not given.
const defaultConfigName = "tren.toml"

// fileConfig mirrors the tren.toml schema.
type fileConfig struct {
	Features struct {
		PerItem    bool `toml:"per_item"`
		Matrix     bool `toml:"matrix"`
		Embedded   bool `toml:"embedded"`
		SentenceID bool `toml:"sentence_id"`
	} `toml:"features"`
	NER struct {
		Enabled bool `toml:"enabled"`
	} `toml:"ner"`
	LID struct {
		ENMin float64 `toml:"en_min"`
		TRMin float64 `toml:"tr_min"`
	} `toml:"lid"`
	Mixed struct {
		Strict     bool    `toml:"strict"`
		EmitSuffix bool    `toml:"emit_suffix"`
		TRWeight   float64 `toml:"tr_weight"`
		ENWeight   float64 `toml:"en_weight"`
	} `toml:"mixed"`
}

// modelFlags registers the flags shared by every command that builds an
// annotator.
func modelFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "TOML config file (default "+defaultConfigName+" when present)")
	cmd.Flags().String("dict-tr", "", "Turkish frequency list (requires --dict-en)")
	cmd.Flags().String("dict-en", "", "English frequency list (requires --dict-tr)")
	cmd.Flags().Int("top-n", dict.DefaultTopN, "size of the high-confidence Turkish tier")
	cmd.Flags().String("lid", "whatlang", "language identifier backend (whatlang|trigram)")
	cmd.Flags().String("lid-cache", "", "prediction cache snapshot, loaded before and saved after the run")
	cmd.Flags().Bool("per-item", true, "emit one row per token")
	cmd.Flags().Bool("matrix", true, "emit the MatrixLang row")
	cmd.Flags().Bool("embedded", true, "emit the EmbedLang row")
	cmd.Flags().Bool("sentence-id", true, "emit the SentenceID row")
	cmd.Flags().Bool("ner", true, "run named-entity recognition")
	cmd.Flags().Bool("mixed-strict", true, "reject mixed splits whose stem is a Turkish word")
	cmd.Flags().Bool("emit-mixed-suffix", false, "append a stem+suffix column to MIXED rows")
	cmd.Flags().Float64("en-min", classify.DefaultENMin, "identifier confidence floor for EN")
	cmd.Flags().Float64("tr-min", classify.DefaultTRMin, "identifier confidence floor for TR")
	cmd.Flags().Float64("mixed-tr-weight", classify.DefaultMixedTRWeight, "matrix-vote weight of a MIXED token toward TR")
	cmd.Flags().Float64("mixed-en-weight", classify.DefaultMixedENWeight, "matrix-vote weight of a MIXED token toward EN")
}

// resolveConfig layers the three configuration sources: built-in
// defaults, then the TOML file, then explicitly set flags.
func resolveConfig(cmd *cobra.Command) (pipeline.Config, error) {
	cfg := pipeline.Default()

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return cfg, err
	}
	explicit := cmd.Flags().Changed("config")
	if path == "" {
		path = defaultConfigName
	}
	if _, statErr := os.Stat(path); statErr == nil {
		if err := applyConfigFile(&cfg, path); err != nil {
			return cfg, err
		}
	} else if explicit {
		return cfg, fmt.Errorf("config file: %w", statErr)
	}

	applyConfigFlags(&cfg, cmd)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyConfigFile overlays the keys actually present in the file, so an
// omitted key keeps its default instead of resetting to the zero value.
func applyConfigFile(cfg *pipeline.Config, path string) error {
	var fc fileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("%s: parse config: %w", path, err)
	}
	if meta.IsDefined("features", "per_item") {
		cfg.PerItem = fc.Features.PerItem
	}
	if meta.IsDefined("features", "matrix") {
		cfg.Matrix = fc.Features.Matrix
	}
	if meta.IsDefined("features", "embedded") {
		cfg.Embedded = fc.Features.Embedded
	}
	if meta.IsDefined("features", "sentence_id") {
		cfg.SentenceID = fc.Features.SentenceID
	}
	if meta.IsDefined("ner", "enabled") {
		cfg.NER = fc.NER.Enabled
	}
	if meta.IsDefined("lid", "en_min") {
		cfg.ENMin = fc.LID.ENMin
	}
	if meta.IsDefined("lid", "tr_min") {
		cfg.TRMin = fc.LID.TRMin
	}
	if meta.IsDefined("mixed", "strict") {
		cfg.MixedStrict = fc.Mixed.Strict
	}
	if meta.IsDefined("mixed", "emit_suffix") {
		cfg.EmitMixedSuffix = fc.Mixed.EmitSuffix
	}
	if meta.IsDefined("mixed", "tr_weight") {
		cfg.MixedTRWeight = fc.Mixed.TRWeight
	}
	if meta.IsDefined("mixed", "en_weight") {
		cfg.MixedENWeight = fc.Mixed.ENWeight
	}
	return nil
}

// applyConfigFlags overlays flags the user set on the command line, the
// highest-precedence source.
func applyConfigFlags(cfg *pipeline.Config, cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("per-item") {
		cfg.PerItem, _ = flags.GetBool("per-item")
	}
	if flags.Changed("matrix") {
		cfg.Matrix, _ = flags.GetBool("matrix")
	}
	if flags.Changed("embedded") {
		cfg.Embedded, _ = flags.GetBool("embedded")
	}
	if flags.Changed("sentence-id") {
		cfg.SentenceID, _ = flags.GetBool("sentence-id")
	}
	if flags.Changed("ner") {
		cfg.NER, _ = flags.GetBool("ner")
	}
	if flags.Changed("en-min") {
		cfg.ENMin, _ = flags.GetFloat64("en-min")
	}
	if flags.Changed("tr-min") {
		cfg.TRMin, _ = flags.GetFloat64("tr-min")
	}
	if flags.Changed("mixed-strict") {
		cfg.MixedStrict, _ = flags.GetBool("mixed-strict")
	}
	if flags.Changed("emit-mixed-suffix") {
		cfg.EmitMixedSuffix, _ = flags.GetBool("emit-mixed-suffix")
	}
	if flags.Changed("mixed-tr-weight") {
		cfg.MixedTRWeight, _ = flags.GetFloat64("mixed-tr-weight")
	}
	if flags.Changed("mixed-en-weight") {
		cfg.MixedENWeight, _ = flags.GetFloat64("mixed-en-weight")
	}
}

// model bundles the pieces a command needs to classify text.
type model struct {
	cfg       pipeline.Config
	dicts     *dict.Dictionaries
	id        *lid.Cached
	ann       *pipeline.Annotator
	cachePath string
}

// buildModel assembles dictionaries, identifier, and annotator from the
// resolved configuration.
func buildModel(cmd *cobra.Command) (*model, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()

	dictTR, _ := flags.GetString("dict-tr")
	dictEN, _ := flags.GetString("dict-en")
	topN, _ := flags.GetInt("top-n")
	if (dictTR == "") != (dictEN == "") {
		return nil, fmt.Errorf("--dict-tr and --dict-en must be given together")
	}
	if topN <= 0 {
		return nil, fmt.Errorf("--top-n must be positive, got %d", topN)
	}

	var dicts *dict.Dictionaries
	switch {
	case dictTR != "":
		dicts, err = dict.Load(dictTR, dictEN, topN)
		if err != nil {
			return nil, err
		}
	case topN != dict.DefaultTopN:
		dicts = dict.New(data.TurkishFreq, data.EnglishFreq, topN)
	default:
		dicts = dict.Embedded()
	}

	lidName, _ := flags.GetString("lid")
	var base lid.Identifier
	switch lidName {
	case "whatlang":
		base = lid.Whatlang{}
	case "trigram":
		base = lid.Trigram{}
	default:
		return nil, fmt.Errorf("unknown --lid backend %q (whatlang|trigram)", lidName)
	}
	cached := lid.NewCached(base, 0)

	cachePath, _ := flags.GetString("lid-cache")
	if cachePath != "" {
		if err := cached.LoadFile(cachePath); err != nil {
			return nil, err
		}
	}

	ann, err := pipeline.New(pipeline.Options{Config: cfg, Dicts: dicts, Identifier: cached})
	if err != nil {
		return nil, err
	}
	return &model{cfg: cfg, dicts: dicts, id: cached, ann: ann, cachePath: cachePath}, nil
}

// saveCache persists the prediction cache when --lid-cache was given.
func (m *model) saveCache() error {
	if m.cachePath == "" {
		return nil
	}
	return m.id.SaveFile(m.cachePath)
}

// readInput returns the text of the file argument, or stdin for "-" or
// no argument.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// writeOutput sends the annotation text to --out, or to stdout with the
// label palette applied.
func writeOutput(cmd *cobra.Command, text string) error {
	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" || outPath == "-" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), colorize(text))
		return err
	}
	if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if !quietFlag(cmd) {
		fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
	}
	return nil
}
