package classify

// Default per-MIXED-token contributions to the matrix vote. A MIXED
// token leans Turkish: its frame morphology is Turkish even though its
// stem is English.
const (
	DefaultMixedTRWeight = 0.6
	DefaultMixedENWeight = 0.4
)

// MatrixDecision is the sentence-level language structure: the matrix
// (dominant) language and, when present, the embedded (secondary) one.
// Embed is meaningful only while HasEmbed is true.
type MatrixDecision struct {
	Matrix   Label
	Embed    Label
	HasEmbed bool
}

// EmbedString returns the embedded language for the output format: the
// label name, or "-" for a monolingual sentence.
func (d MatrixDecision) EmbedString() string {
	if !d.HasEmbed {
		return "-"
	}
	return d.Embed.String()
}

// DecideMatrixEmbed computes the matrix and embedded languages of one
// sentence from its token labels. TR and EN each count 1 toward their
// own score and every MIXED token adds trWeight to Turkish and enWeight
// to English; the higher score is the matrix, with ties going to TR.
// The embedded language is presence-based, independent of the weights:
// any token of the opposite language or any MIXED token sets it.
// NE, OTHER, and UID tokens play no part. Deterministic for a given
// label multiset.
func DecideMatrixEmbed(labels []Label, trWeight, enWeight float64) MatrixDecision {
	var tr, en, mixed int
	for _, lb := range labels {
		switch lb {
		case TR:
			tr++
		case EN:
			en++
		case Mixed:
			mixed++
		}
	}

	scoreTR := float64(tr) + trWeight*float64(mixed)
	scoreEN := float64(en) + enWeight*float64(mixed)

	d := MatrixDecision{Matrix: TR}
	if scoreTR < scoreEN {
		d.Matrix = EN
	}
	if d.Matrix == TR && (en > 0 || mixed > 0) {
		d.Embed, d.HasEmbed = EN, true
	}
	if d.Matrix == EN && (tr > 0 || mixed > 0) {
		d.Embed, d.HasEmbed = TR, true
	}
	return d
}
