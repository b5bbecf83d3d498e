package main

import (
	"github.com/spf13/cobra"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate [file]",
	Short: "Annotate code-switched text token by token",
	Long: `Annotate reads one sentence per line and emits the tab-separated
annotation format: an optional SentenceID row, one <token> <LABEL> row
per token, the sentence's MatrixLang and EmbedLang rows, and a blank
row closing each block. Reads stdin when the file is "-" or omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnnotate,
}

func init() {
	modelFlags(annotateCmd)
	annotateCmd.Flags().Int("workers", 1, "number of concurrent sentence classifiers")
	annotateCmd.Flags().String("out", "", "write output to this file instead of stdout")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	if err := setupColor(cmd); err != nil {
		return err
	}

	m, err := buildModel(cmd)
	if err != nil {
		return err
	}

	text, err := readInput(args)
	if err != nil {
		return err
	}

	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return err
	}

	out, err := m.ann.AnnotateParallel(text, workers)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd, out); err != nil {
		return err
	}
	return m.saveCache()
}
