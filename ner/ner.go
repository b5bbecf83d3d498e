// Package ner supplies named-entity spans for the token classifier's NE
// override.
//
// The Provider interface models a stateful recognizer with an explicit
// two-phase lifecycle: construct it cold, then EnsureReady loads whatever
// the backend needs (idempotent, safe to call again), then Analyze
// returns the entity spans of one sentence. Heuristic is the built-in
// backend; external model-backed providers plug in through the same
// interface.
//
// Entity spans carry byte offsets satisfying the invariant
// sentence[Start:End] == Text.
//
// Most NER models are not reentrant. Wrap any such backend with
// Serialize, which admits one Analyze or EnsureReady call at a time.
package ner

import (
	"fmt"
	"sync"
)

// Span is one recognized entity with its position in the sentence.
type Span struct {
	Text  string `json:"text"`
	Start int    `json:"start"` // byte offset, inclusive
	End   int    `json:"end"`   // byte offset, exclusive
}

// String returns a debug representation, e.g. "Merve Yılmaz"[5:17].
func (s Span) String() string {
	return fmt.Sprintf("%q[%d:%d]", s.Text, s.Start, s.End)
}

// Provider recognizes named entities one sentence at a time.
type Provider interface {
	// EnsureReady performs any one-time backend setup. It is idempotent;
	// callers may invoke it again after success or failure.
	EnsureReady() error

	// Analyze returns the entity spans of sentence, sorted by Start.
	Analyze(sentence string) ([]Span, error)
}

// serialized admits one call into the wrapped provider at a time.
type serialized struct {
	mu sync.Mutex
	p  Provider
}

// Serialize wraps p so that EnsureReady and Analyze calls are mutually
// exclusive, for backends that are not safe to call concurrently.
func Serialize(p Provider) Provider {
	return &serialized{p: p}
}

func (s *serialized) EnsureReady() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.EnsureReady()
}

func (s *serialized) Analyze(sentence string) ([]Span, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Analyze(sentence)
}
