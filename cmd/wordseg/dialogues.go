package main

import (
	"errors"
	"fmt"

	"github.com/bastiangx/wordseg/pkg/dialogue"
	"github.com/bastiangx/wordseg/pkg/dictionary"
	"github.com/bastiangx/wordseg/pkg/segment"
	"github.com/bastiangx/wordseg/pkg/vocab"
)

// runWords prints the sorted distinct words of a dialogue range.
func runWords(a *app, args []string) error {
	fs := newFlagSet("words")
	dialogues := fs.String("d", "", "YAML or JSON file containing dialogues (required)")
	wordsPath := fs.String("w", "", "File containing words, one per line (required)")
	first := fs.Int("s", 0, "Index of first dialogue to process (0-based)")
	count := fs.Int("c", 0, "Number of dialogues to process (0 for all remaining)")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}
	if *dialogues == "" || *wordsPath == "" {
		fs.Usage()
		return errors.New("-d and -w are required")
	}

	// the list is used as given, only trimmed
	opts := dictionary.Options{NormalizeNFC: a.config.Vocab.NormalizeNFC}
	dict, err := dictionary.LoadTrie(*wordsPath, opts)
	if err != nil {
		return fmt.Errorf("error processing word list: %w", err)
	}

	selected, err := selectDialogues(*dialogues, *first, *count)
	if err != nil {
		return err
	}

	found := vocab.ExtractLines(segment.New(dict), dialogue.Texts(selected))
	for _, w := range found.Sorted() {
		fmt.Fprintln(a.out, w)
	}
	return nil
}

// runBrief prints the Chinese lines of a dialogue range.
func runBrief(a *app, args []string) error {
	fs := newFlagSet("brief")
	dialogues := fs.String("d", "", "YAML or JSON file containing dialogues (required)")
	first := fs.Int("s", 0, "Index of first dialogue to process (0-based)")
	count := fs.Int("c", 0, "Number of dialogues to process (0 for all remaining)")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}
	if *dialogues == "" {
		fs.Usage()
		return errors.New("-d is required")
	}

	selected, err := selectDialogues(*dialogues, *first, *count)
	if err != nil {
		return err
	}

	for i, d := range selected {
		fmt.Fprintf(a.out, "# Dialogue %d\n", *first+i+1)
		for _, line := range d.Lines {
			speaker := line.Speaker
			if speaker == "" {
				speaker = "?"
			}
			fmt.Fprintf(a.out, "%s: %s\n", speaker, line.Chinese)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}
