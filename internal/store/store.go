// Package store loads and saves the waste vocabulary file.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"fjacquet/spendwise/internal/logging"
	"fjacquet/spendwise/internal/models"
	"fjacquet/spendwise/internal/waste"

	"gopkg.in/yaml.v3"
)

// DefaultVocabularyFile is looked up when no file is configured.
const DefaultVocabularyFile = "waste.yaml"

// VocabularyFile is the YAML layout of a vocabulary file. Categories are
// matched against the record category, keywords against the description,
// although both lists end up in the same vocabulary.
type VocabularyFile struct {
	Categories []string `yaml:"categories"`
	Keywords   []string `yaml:"keywords"`
}

// Terms returns categories followed by keywords.
func (f VocabularyFile) Terms() []string {
	terms := make([]string, 0, len(f.Categories)+len(f.Keywords))
	terms = append(terms, f.Categories...)
	return append(terms, f.Keywords...)
}

// VocabularyStore manages the vocabulary file.
type VocabularyStore struct {
	VocabularyFile string
	logger         logging.Logger
}

// NewVocabularyStore creates a store for file. An empty file name means
// DefaultVocabularyFile.
func NewVocabularyStore(file string, logger logging.Logger) *VocabularyStore {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &VocabularyStore{VocabularyFile: file, logger: logger}
}

func (s *VocabularyStore) filename() string {
	if s.VocabularyFile == "" {
		return DefaultVocabularyFile
	}
	return s.VocabularyFile
}

// FindConfigFile looks for filename as given, then under ./config and
// finally under $HOME/.spendwise.
func (s *VocabularyStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".spendwise", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// LoadTerms reads the vocabulary file. A missing file is not an error and
// yields no terms. Both the categories/keywords layout and a plain YAML list
// of terms are accepted.
func (s *VocabularyStore) LoadTerms() ([]string, error) {
	filename := s.filename()

	filePath, err := s.FindConfigFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Debug("Vocabulary file not found",
				logging.Field{Key: logging.FieldFile, Value: filename})
			return nil, nil
		}
		return nil, fmt.Errorf("error resolving vocabulary file: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("error reading vocabulary file: %w", err)
	}

	var file VocabularyFile
	if err := yaml.Unmarshal(data, &file); err == nil {
		s.logger.Debug("Loaded vocabulary",
			logging.Field{Key: logging.FieldFile, Value: filePath},
			logging.Field{Key: logging.FieldCount, Value: len(file.Terms())})
		return file.Terms(), nil
	}

	var terms []string
	if err := yaml.Unmarshal(data, &terms); err != nil {
		return nil, fmt.Errorf("error parsing vocabulary file %s: %w", filePath, err)
	}
	s.logger.Debug("Loaded vocabulary list",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(terms)})
	return terms, nil
}

// LoadVocabulary builds the effective vocabulary: the file's terms, or the
// built-in defaults when the file is missing or empty, plus extra terms.
func (s *VocabularyStore) LoadVocabulary(extra ...string) (waste.Vocabulary, error) {
	terms, err := s.LoadTerms()
	if err != nil {
		return waste.Vocabulary{}, err
	}
	if len(terms) == 0 {
		terms = append([]string(nil), waste.DefaultTerms...)
	}
	return waste.NewVocabulary(append(terms, extra...)...), nil
}

// SaveVocabulary writes vocabulary to path in the categories/keywords layout.
// Terms starting with an upper case letter are written as categories.
func (s *VocabularyStore) SaveVocabulary(path string, vocabulary waste.Vocabulary) error {
	var file VocabularyFile
	for _, term := range vocabulary.Terms() {
		if first, _ := utf8.DecodeRuneInString(term); unicode.IsUpper(first) {
			file.Categories = append(file.Categories, term)
		} else {
			file.Keywords = append(file.Keywords, term)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), models.PermissionDirectory); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("error marshaling vocabulary: %w", err)
	}

	if err := os.WriteFile(path, data, models.PermissionReportFile); err != nil {
		return fmt.Errorf("error writing vocabulary: %w", err)
	}

	s.logger.Info("Saved vocabulary",
		logging.Field{Key: logging.FieldOutput, Value: path},
		logging.Field{Key: logging.FieldCount, Value: vocabulary.Len()})
	return nil
}
