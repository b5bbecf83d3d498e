// Command tren annotates Turkish-English code-switched text.
//
// Input is one sentence per line; annotate labels every token and
// decides each sentence's matrix and embedded language:
//
//	$ echo "bugün meeting var" | tren annotate
//	SentenceID	1
//	bugün	TR
//	meeting	EN
//	var	TR
//	MatrixLang	TR
//	EmbedLang	EN
//
// preprocess turns raw text into the placeholder grid used to seed
// manual annotation, serve exposes the pipeline as a JSON API, and
// version reports build metadata.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tren",
	Short: "Turkish-English code-switch annotation toolkit",
	Long:  `tren labels Turkish-English code-switched text token by token and decides sentence-level matrix and embedded languages.`,
}

func main() {
	rootCmd.Version = Version

	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(preprocessCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func quietFlag(cmd *cobra.Command) bool {
	q, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	return q
}
