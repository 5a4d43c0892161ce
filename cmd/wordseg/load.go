package main

import (
	"errors"
	"fmt"

	"github.com/bastiangx/wordseg/internal/utils"
	"github.com/bastiangx/wordseg/pkg/dialogue"
	"github.com/bastiangx/wordseg/pkg/dictionary"
	"github.com/bastiangx/wordseg/pkg/trie"
	"github.com/bastiangx/wordseg/pkg/vocab"
	"github.com/charmbracelet/log"
)

// wordListOptions returns the cleaning options from the config.
func (a *app) wordListOptions() dictionary.Options {
	return dictionary.Options{
		Clean:        a.config.Vocab.Clean,
		NormalizeNFC: a.config.Vocab.NormalizeNFC,
	}
}

// vocabularyPath picks the flag value, then the config value, then the
// install default.
func (a *app) vocabularyPath(flagValue string) (string, error) {
	path := flagValue
	if path == "" {
		path = a.config.Vocab.Path
	}
	if path == "" {
		if a.paths == nil {
			return "", errors.New("no vocabulary file given")
		}
		path = a.paths.DefaultVocabularyPath()
		log.Debugf("Using default vocabulary at: %s", utils.GetAbsolutePath(path))
	}
	if a.paths != nil {
		path = a.paths.ResolveDataFile(path)
	}
	return path, nil
}

// loadDictionary builds the segmentation dictionary.
func (a *app) loadDictionary(flagValue string) (*trie.Trie, error) {
	path, err := a.vocabularyPath(flagValue)
	if err != nil {
		return nil, err
	}
	dict, err := dictionary.LoadTrie(path, a.wordListOptions())
	if err != nil {
		return nil, fmt.Errorf("error processing vocabulary file: %w", err)
	}
	return dict, nil
}

// loadKnown reads the learner's known words. An empty path gives an empty set.
func (a *app) loadKnown(path string) (*vocab.Lexicon, error) {
	if path == "" {
		return vocab.NewLexicon(), nil
	}
	words, err := dictionary.LoadWords(path, a.wordListOptions())
	if err != nil {
		return nil, fmt.Errorf("error processing word list: %w", err)
	}
	known := vocab.NewLexicon(words...)
	log.Debugf("Loaded %d known words from %s", known.Len(), path)
	return known, nil
}

// selectDialogues parses the dialogue file and applies the range flags.
func selectDialogues(path string, first, count int) ([]dialogue.Dialogue, error) {
	if first < 0 {
		return nil, fmt.Errorf("%w: -s must be non-negative", dialogue.ErrRange)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: -c must be positive", dialogue.ErrRange)
	}

	all, err := parseDialogues(path)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no dialogues found in %s", path)
	}

	sel, err := dialogue.Select(all, first, count)
	if err != nil {
		return nil, err
	}
	if sel.Truncated {
		log.Warnf("Requested %d dialogues but only %d remain after index %d", count, len(sel.Dialogues), first)
	}
	return sel.Dialogues, nil
}

// parseDialogues reads a dialogue document, warning about unexpected extensions.
func parseDialogues(path string) ([]dialogue.Dialogue, error) {
	if format := dictionary.DetectFileFormat(path); !format.IsDialogueFormat() {
		log.Warnf("Dialogue file %s looks like a %s, parsing it as YAML", path, format)
	}
	return dialogue.ParseFile(path)
}
