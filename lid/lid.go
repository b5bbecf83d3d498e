// Package lid provides statistical language identification for single
// words, the classifier's last resort after the dictionary tiers.
//
// Two backends implement Identifier: Whatlang wraps the whatlanggo
// trigram detector; Trigram is a self-contained Turkish/English scorer
// that works offline and gives deterministic results in tests. NewCached
// wraps any backend with a bounded LRU so repeated tokens hit memory
// instead of the model, and the cache contents can be persisted across
// runs with SaveFile and LoadFile.
//
// All identifiers are safe for concurrent use by multiple goroutines.
package lid

// Prediction is a language guess for one word. Lang is an upper-case
// ISO 639-1 code ("TR", "EN", ...); the zero value means no prediction.
//
// Confidence is in [0.0, 1.0] and reflects the relative strength of the
// winning hypothesis within the backend, not an absolute probability.
type Prediction struct {
	Lang       string
	Confidence float64
}

// Identifier predicts the language of a single word. Implementations
// are pure lookups with no error path; a word that defeats the backend
// yields the zero Prediction.
type Identifier interface {
	Predict(word string) Prediction
}
