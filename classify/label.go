package classify

import (
	"encoding/json"
	"fmt"
)

// Label identifies the language or role of a single token.
type Label int

const (
	UID   Label = iota // zero value, no method reached sufficient confidence
	TR                 // monolingual Turkish
	EN                 // monolingual English
	Mixed              // English stem carrying a Turkish grammatical suffix
	NE                 // named entity, supplied by the caller
	Other              // non-linguistic: URL, mention, hashtag, number, emoji, punctuation
)

// labelNames maps Label values to their output-format names.
var labelNames = [...]string{
	UID:   "UID",
	TR:    "TR",
	EN:    "EN",
	Mixed: "MIXED",
	NE:    "NE",
	Other: "OTHER",
}

// labelFromName maps output-format names back to Label values.
var labelFromName = map[string]Label{
	"UID":   UID,
	"TR":    TR,
	"EN":    EN,
	"MIXED": Mixed,
	"NE":    NE,
	"OTHER": Other,
}

// String returns the label as it appears in annotation output.
func (l Label) String() string {
	if int(l) >= 0 && int(l) < len(labelNames) {
		return labelNames[l]
	}
	return fmt.Sprintf("Label(%d)", int(l))
}

// MarshalJSON encodes the label as a JSON string (e.g. "MIXED").
func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "MIXED") into a Label.
func (l *Label) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	lb, ok := labelFromName[s]
	if !ok {
		return fmt.Errorf("classify: unknown label: %q", s)
	}
	*l = lb
	return nil
}
