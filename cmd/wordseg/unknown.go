package main

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/bastiangx/wordseg/pkg/dialogue"
	"github.com/bastiangx/wordseg/pkg/segment"
	"github.com/bastiangx/wordseg/pkg/vocab"
	"github.com/charmbracelet/log"
)

// runUnknown prints the dialogue words missing from the known-word list.
func runUnknown(a *app, args []string) error {
	fs := newFlagSet("unknown")
	vocabulary := fs.String("vocabulary", "", "File containing vocabulary for word segmentation (default: ../words/10K.txt)")
	wordlist := fs.String("wordlist", "", "File containing known words to check against (required)")
	dialogues := fs.String("dialogue", "", "YAML or JSON file containing dialogues (required)")
	randomOrder := fs.Bool("random-order", a.config.Output.RandomOrder, "Output words in random order")
	seed := fs.Int64("seed", a.config.Output.Seed, "Seed for --random-order, 0 for a different order each run")
	filterNoise := fs.Bool("filter-noise", a.config.Output.FilterNoise, "Drop tokens made only of punctuation and whitespace")
	if _, err := parseArgs(fs, args); err != nil {
		return err
	}
	if *wordlist == "" || *dialogues == "" {
		fs.Usage()
		return errors.New("--wordlist and --dialogue are required")
	}

	dict, err := a.loadDictionary(*vocabulary)
	if err != nil {
		return err
	}
	known, err := a.loadKnown(*wordlist)
	if err != nil {
		return err
	}
	all, err := parseDialogues(*dialogues)
	if err != nil {
		return err
	}

	words := vocab.ExtractLines(segment.New(dict), dialogue.Texts(all))
	unknown := vocab.Unknown(known, words)
	if *filterNoise {
		unknown = vocab.FilterNoise(unknown)
	}
	log.Debugf("%d dialogue words, %d unknown", words.Len(), unknown.Len())

	order := vocab.OrderSorted
	var rng *rand.Rand
	if *randomOrder {
		order = vocab.OrderRandom
		if *seed != 0 {
			rng = vocab.NewRand(uint64(*seed))
		}
	}
	for _, w := range vocab.Arrange(unknown, order, rng) {
		fmt.Fprintln(a.out, w)
	}
	return nil
}
