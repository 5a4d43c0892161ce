package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/bastiangx/wordseg/pkg/dialogue"
	"github.com/charmbracelet/log"
)

// runConvert turns a legacy title mapping into the JSON list layout.
func runConvert(a *app, args []string) error {
	fs := newFlagSet("convert")
	output := fs.String("o", "", "Output JSON file (default: stdout)")
	indent := fs.Int("indent", 2, "JSON indentation, 0 for compact output")
	ensureASCII := fs.Bool("ensure-ascii", false, "Escape every non-ASCII character")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		fs.Usage()
		return errors.New("expected exactly one input file")
	}
	input := positional[0]

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("error reading input file: %w", err)
	}
	dialogues, err := dialogue.ParseLegacy(data)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", input, err)
	}
	log.Debugf("Converting %d dialogues", len(dialogues))

	return a.writeDialogues(*output, dialogues, dialogue.WriteOptions{Indent: *indent, EnsureASCII: *ensureASCII})
}

// runStripAudio removes the audio references of a dialogue file.
func runStripAudio(a *app, args []string) error {
	fs := newFlagSet("strip-audio")
	output := fs.String("o", "", "Output JSON file (default: overwrite input)")
	positional, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if len(positional) != 1 {
		fs.Usage()
		return errors.New("expected exactly one input file")
	}
	input := positional[0]

	dialogues, err := parseDialogues(input)
	if err != nil {
		return err
	}
	dialogue.StripAudio(dialogues)

	if *output == "" {
		*output = input
	}
	return a.writeDialogues(*output, dialogues, dialogue.WriteOptions{Indent: 2})
}

// writeDialogues writes to path, or to the command output when path is empty.
// The file is only touched once encoding has succeeded.
func (a *app) writeDialogues(path string, dialogues []dialogue.Dialogue, opts dialogue.WriteOptions) error {
	var buf bytes.Buffer
	if err := dialogue.WriteJSON(&buf, dialogues, opts); err != nil {
		return err
	}
	if path == "" {
		_, err := a.out.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	log.Debugf("Wrote %d dialogues to %s", len(dialogues), path)
	return nil
}
