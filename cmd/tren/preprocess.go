package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/bostanberkay/TREN/dict"
	"github.com/bostanberkay/TREN/normalize"
	"github.com/bostanberkay/TREN/pipeline"
	"github.com/bostanberkay/TREN/tokenizer"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess [file]",
	Short: "Convert raw text into the placeholder annotation format",
	Long: `Preprocess turns raw text into the grid used to seed manual
annotation: every token becomes a <token> UID row and each sentence
block ends with a blank row. --split first breaks running text into one
sentence per line; --restore-diacritics deasciifies Turkish words
(gunaydin -> günaydın) against the frequency dictionary. Reads stdin
when the file is "-" or omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreprocess,
}

func init() {
	preprocessCmd.Flags().Bool("split", false, "split running text into one sentence per line")
	preprocessCmd.Flags().Bool("restore-diacritics", false, "restore Turkish diacritics on ASCII-typed words")
	preprocessCmd.Flags().String("out", "", "write output to this file instead of stdout")
}

func runPreprocess(cmd *cobra.Command, args []string) error {
	if err := setupColor(cmd); err != nil {
		return err
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}

	if restore, _ := cmd.Flags().GetBool("restore-diacritics"); restore {
		text = normalize.New(dict.Embedded()).Normalize(text)
	}
	if split, _ := cmd.Flags().GetBool("split"); split {
		sents := tokenizer.Sentences(text)
		for i, s := range sents {
			// A sentence wrapped across input lines must land on one
			// output line.
			sents[i] = strings.Join(strings.Fields(s), " ")
		}
		text = strings.Join(sents, "\n")
	}

	ann, err := pipeline.New(pipeline.Options{})
	if err != nil {
		return err
	}
	return writeOutput(cmd, ann.Preprocess(text))
}
