// Package dialogue reads the study dialogues whose Chinese lines are fed to
// the segmenter.
//
// Two document layouts are accepted, in YAML or JSON:
//
// The legacy layout maps each dialogue title to its lines:
//
//	greetings:
//	  - s: A
//	    c: 你好！
//	    p: Nǐ hǎo!
//
// The list layout holds dialogues in order:
//
//	[{"title": "greetings", "lines": [{"s": "A", "c": "你好！"}]}]
//
// Only the "c" field of a line is required.
package dialogue

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Line is one utterance of a dialogue.
type Line struct {
	Speaker     string `yaml:"s,omitempty" json:"s,omitempty"`
	Chinese     string `yaml:"c" json:"c"`
	Pinyin      string `yaml:"p,omitempty" json:"p,omitempty"`
	Translation string `yaml:"t,omitempty" json:"t,omitempty"`
	Description string `yaml:"d,omitempty" json:"d,omitempty"`
	Audio       string `yaml:"a,omitempty" json:"a,omitempty"`
	AudioSlow   string `yaml:"as,omitempty" json:"as,omitempty"`
}

// Dialogue is a titled, ordered list of lines.
type Dialogue struct {
	Title string `yaml:"title" json:"title"`
	Lines []Line `yaml:"lines" json:"lines"`
}

// ParseError reports a structural problem in a dialogue document.
type ParseError struct {
	Dialogue string
	Line     int // 1-based, 0 when the problem is not tied to a line
	Msg      string
	Err      error
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}
	if e.Dialogue != "" {
		msg = fmt.Sprintf("dialogue %q: %s", e.Dialogue, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a dialogue document in either layout. An empty document
// yields no dialogues.
func Parse(data []byte) ([]Dialogue, error) {
	return parse(data, true)
}

// ParseLegacy reads a document that must use the legacy title mapping.
func ParseLegacy(data []byte) ([]Dialogue, error) {
	return parse(data, false)
}

// ParseFile reads and parses the dialogue document at path.
func ParseFile(path string) ([]Dialogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialogue file %s: %w", path, err)
	}
	dialogues, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse dialogue file %s: %w", path, err)
	}
	return dialogues, nil
}

func parse(data []byte, allowList bool) ([]Dialogue, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Msg: "invalid YAML", Err: err}
	}
	if len(doc.Content) == 0 {
		return []Dialogue{}, nil
	}

	root := doc.Content[0]
	switch {
	case root.Kind == yaml.MappingNode:
		return parseLegacy(root)
	case root.Kind == yaml.SequenceNode && allowList:
		return parseList(root)
	case root.Kind == yaml.ScalarNode && root.Tag == "!!null":
		return []Dialogue{}, nil
	}
	if allowList {
		return nil, &ParseError{Msg: "invalid structure: expected a mapping of titles or a list of dialogues"}
	}
	return nil, &ParseError{Msg: "invalid structure: expected a mapping of dialogue titles"}
}

func parseLegacy(root *yaml.Node) ([]Dialogue, error) {
	dialogues := make([]Dialogue, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		title := root.Content[i].Value
		lines, err := parseLines(title, root.Content[i+1])
		if err != nil {
			return nil, err
		}
		dialogues = append(dialogues, Dialogue{Title: title, Lines: lines})
	}
	return dialogues, nil
}

func parseList(root *yaml.Node) ([]Dialogue, error) {
	dialogues := make([]Dialogue, 0, len(root.Content))
	for i, item := range root.Content {
		if item.Kind != yaml.MappingNode {
			return nil, &ParseError{Msg: fmt.Sprintf("invalid structure: dialogue %d is not a mapping", i)}
		}

		var title string
		var linesNode *yaml.Node
		for j := 0; j+1 < len(item.Content); j += 2 {
			switch item.Content[j].Value {
			case "title":
				title = item.Content[j+1].Value
			case "lines":
				linesNode = item.Content[j+1]
			}
		}
		if linesNode == nil {
			return nil, &ParseError{Dialogue: title, Msg: "missing required field 'lines'"}
		}

		lines, err := parseLines(title, linesNode)
		if err != nil {
			return nil, err
		}
		dialogues = append(dialogues, Dialogue{Title: title, Lines: lines})
	}
	return dialogues, nil
}

func parseLines(title string, node *yaml.Node) ([]Line, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, &ParseError{Dialogue: title, Msg: "expected list of lines"}
	}

	lines := make([]Line, 0, len(node.Content))
	for i, item := range node.Content {
		if item.Kind != yaml.MappingNode {
			return nil, &ParseError{Dialogue: title, Line: i + 1, Msg: "expected a mapping"}
		}
		if !hasKey(item, "c") {
			return nil, &ParseError{Dialogue: title, Line: i + 1, Msg: "missing required field 'c'"}
		}
		var line Line
		if err := item.Decode(&line); err != nil {
			return nil, &ParseError{Dialogue: title, Line: i + 1, Msg: "invalid line", Err: err}
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func hasKey(mapping *yaml.Node, key string) bool {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return true
		}
	}
	return false
}

// ErrRange is returned by Select for a dialogue range that cannot be served.
var ErrRange = errors.New("invalid dialogue range")

// Selection is the outcome of Select.
type Selection struct {
	Dialogues []Dialogue
	// Truncated is set when fewer dialogues remained than requested.
	Truncated bool
}

// Select returns count dialogues starting at index first. A count of zero
// selects every remaining dialogue; a count past the end is clamped and
// flagged as Truncated.
func Select(dialogues []Dialogue, first, count int) (Selection, error) {
	if first < 0 {
		return Selection{}, fmt.Errorf("%w: first dialogue must be non-negative", ErrRange)
	}
	if count < 0 {
		return Selection{}, fmt.Errorf("%w: dialogue count must be positive", ErrRange)
	}
	if first >= len(dialogues) {
		return Selection{}, fmt.Errorf("%w: first dialogue (%d) exceeds number of dialogues (%d)",
			ErrRange, first, len(dialogues))
	}

	end := len(dialogues)
	truncated := false
	if count > 0 {
		if count > end-first {
			truncated = true
		} else {
			end = first + count
		}
	}
	return Selection{Dialogues: dialogues[first:end], Truncated: truncated}, nil
}

// Texts returns the Chinese text of every line, in document order.
func Texts(dialogues []Dialogue) []string {
	var texts []string
	for _, d := range dialogues {
		for _, l := range d.Lines {
			texts = append(texts, l.Chinese)
		}
	}
	return texts
}

// StripAudio clears the audio references of every line.
func StripAudio(dialogues []Dialogue) {
	for i := range dialogues {
		for j := range dialogues[i].Lines {
			dialogues[i].Lines[j].Audio = ""
			dialogues[i].Lines[j].AudioSlow = ""
		}
	}
}
