package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Label palette of the annotation editor the output format comes from.
// Matrix and Embed rows are dimmed so the token rows stand out.
var (
	labelColors = map[string]*color.Color{
		"TR":    color.New(color.FgGreen),
		"EN":    color.New(color.FgCyan),
		"MIXED": color.New(color.FgMagenta),
		"UID":   color.New(color.FgYellow),
		"NE":    color.New(color.FgYellow),
		"OTHER": color.New(color.FgWhite),
	}
	faintRow = color.New(color.Faint)
)

// setupColor translates --color into the color package's global switch.
// auto keeps the package's own terminal detection.
func setupColor(cmd *cobra.Command) error {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	switch mode {
	case "auto":
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color mode %q (auto|always|never)", mode)
	}
	return nil
}

// colorize applies the label palette to annotation output. Rows keep
// their exact tab layout; only the label column gains escape codes, so
// the result still parses as the output format.
func colorize(out string) string {
	if color.NoColor {
		return out
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		if fields[0] == "MatrixLang" || fields[0] == "EmbedLang" {
			lines[i] = faintRow.Sprint(line)
			continue
		}
		if len(fields) >= 2 {
			if c, ok := labelColors[fields[1]]; ok {
				fields[1] = c.Sprint(fields[1])
				lines[i] = strings.Join(fields, "\t")
			}
		}
	}
	return strings.Join(lines, "\n")
}
