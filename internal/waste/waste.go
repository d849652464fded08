// Package waste recognises discretionary spending from a term vocabulary.
package waste

import (
	"strings"

	"fjacquet/spendwise/internal/aggregator"
	"fjacquet/spendwise/internal/models"
)

// DefaultTerms is the built-in vocabulary. The capitalised terms are category
// names, the lowercase ones merchant keywords.
var DefaultTerms = []string{
	"Luxury Items", "Jewelry", "Vacation", "Pub", "Liquor Store", "Dining Out", "Entertainment",
	"swiggy", "uber", "zomato", "bar", "delivery", "coffee", "cab",
}

// Vocabulary is an immutable set of waste terms.
type Vocabulary struct {
	terms []string
	lower []string
}

// NewVocabulary trims terms and ignores blank or duplicate ones, keeping the
// first spelling seen.
func NewVocabulary(terms ...string) Vocabulary {
	v := Vocabulary{}
	seen := make(map[string]bool)
	for _, term := range terms {
		term = strings.TrimSpace(term)
		key := strings.ToLower(term)
		if term == "" || seen[key] {
			continue
		}
		seen[key] = true
		v.terms = append(v.terms, term)
		v.lower = append(v.lower, key)
	}
	return v
}

// DefaultVocabulary returns a vocabulary of DefaultTerms.
func DefaultVocabulary() Vocabulary {
	return NewVocabulary(DefaultTerms...)
}

// Terms returns a copy of the vocabulary's terms.
func (v Vocabulary) Terms() []string {
	return append([]string(nil), v.terms...)
}

// Len is the number of terms.
func (v Vocabulary) Len() int {
	return len(v.terms)
}

// Matches reports whether record is waste: its category equals a term or its
// description contains one, both ignoring case. Note that short terms such as
// "bar" also match inside longer words.
func Matches(record models.Record, vocabulary Vocabulary) bool {
	description := strings.ToLower(record.Description)
	for i, term := range vocabulary.terms {
		if strings.EqualFold(record.Category, term) || strings.Contains(description, vocabulary.lower[i]) {
			return true
		}
	}
	return false
}

// Classify keeps the records that match vocabulary, in input order.
// Classifying its own output returns the same set.
func Classify(records []models.Record, vocabulary Vocabulary) []models.Record {
	matched := make([]models.Record, 0)
	for _, record := range records {
		if Matches(record, vocabulary) {
			matched = append(matched, record)
		}
	}
	return matched
}

// Breakdown aggregates the waste records of records by category. Shares are
// fractions of the waste total. No matches gives an empty breakdown with a
// zero total.
func Breakdown(records []models.Record, vocabulary Vocabulary) models.WasteReport {
	matched := Classify(records, vocabulary)
	return models.WasteReport{
		Records:    len(matched),
		Total:      aggregator.Total(matched),
		Categories: aggregator.ByCategory(matched),
	}
}
