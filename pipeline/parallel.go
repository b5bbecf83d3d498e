package pipeline

import (
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// AnnotateParallel is Annotate with sentences classified concurrently by
// up to workers goroutines. Sentences are independent, so the output is
// byte-identical with Annotate: results land in per-line slots and the
// rows are assembled in input order afterwards. workers of one or less
// runs the serial path.
func (a *Annotator) AnnotateParallel(text string, workers int) (string, error) {
	if workers <= 1 {
		return a.Annotate(text)
	}

	lines := splitLines(text)
	results := make([]Sentence, len(lines))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		i, line := i, line
		g.Go(func() error {
			s, err := a.classifyLine(line)
			if err != nil {
				return fmt.Errorf("line %d: %w", i+1, err)
			}
			results[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	var rows []string
	index := 0
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			rows = append(rows, "")
			continue
		}
		index++
		results[i].Index = index
		rows = append(rows, a.renderSentence(results[i])...)
	}
	return strings.Join(rows, "\n"), nil
}
