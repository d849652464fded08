package store

import "fjacquet/spendwise/internal/waste"

// MockVocabularyStore is an in-memory vocabulary source for tests.
type MockVocabularyStore struct {
	Terms     []string
	LoadError error
	Saved     map[string]waste.Vocabulary
}

// LoadVocabulary returns the mock terms, or the defaults when there are none.
func (m *MockVocabularyStore) LoadVocabulary(extra ...string) (waste.Vocabulary, error) {
	if m.LoadError != nil {
		return waste.Vocabulary{}, m.LoadError
	}
	terms := append([]string(nil), m.Terms...)
	if len(terms) == 0 {
		terms = append(terms, waste.DefaultTerms...)
	}
	return waste.NewVocabulary(append(terms, extra...)...), nil
}

// SaveVocabulary records the vocabulary under path.
func (m *MockVocabularyStore) SaveVocabulary(path string, vocabulary waste.Vocabulary) error {
	if m.Saved == nil {
		m.Saved = make(map[string]waste.Vocabulary)
	}
	m.Saved[path] = vocabulary
	return nil
}
