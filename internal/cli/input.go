// Package cli handles cmd line input for inspecting segmentation interactively.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/wordseg/internal/logger"
	"github.com/bastiangx/wordseg/internal/utils"
	"github.com/bastiangx/wordseg/pkg/segment"
	"github.com/bastiangx/wordseg/pkg/trie"
	"github.com/bastiangx/wordseg/pkg/vocab"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// Styles colour the three kinds of token.
type Styles struct {
	Known     lipgloss.Style // dictionary word the learner knows
	Unknown   lipgloss.Style // dictionary word the learner does not know
	Unmatched lipgloss.Style // code point outside the dictionary
}

// DefaultStyles returns the styles for output going through r.
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Known: r.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}),
		Unknown: r.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#d7827e", Dark: "#f6c177"}),
		Unmatched: r.NewStyle().Faint(true),
	}
}

// InputHandler reads lines and prints them segmented, with the tokens the
// learner does not know yet highlighted.
//
// A line starting with '?' lists dictionary words under the rest of the line.
// A line starting with '+' adds its space separated words to the known set.
type InputHandler struct {
	dict      *trie.Trie
	segmenter *segment.Segmenter
	known     *vocab.Lexicon
	limit     int
	in        io.Reader
	out       io.Writer
	styles    Styles
	logger    *log.Logger
}

// NewInputHandler creates a handler on stdin/stdout.
func NewInputHandler(dict *trie.Trie, known *vocab.Lexicon, limit int) *InputHandler {
	return NewInputHandlerWithIO(dict, known, limit, os.Stdin, os.Stdout)
}

// NewInputHandlerWithIO creates a handler on the given streams. Colours are
// chosen for out, so a non-terminal writer receives plain text.
func NewInputHandlerWithIO(dict *trie.Trie, known *vocab.Lexicon, limit int, in io.Reader, out io.Writer) *InputHandler {
	if known == nil {
		known = vocab.NewLexicon()
	}
	return &InputHandler{
		dict:      dict,
		segmenter: segment.New(dict),
		known:     known,
		limit:     limit,
		in:        in,
		out:       out,
		styles:    DefaultStyles(lipgloss.NewRenderer(out)),
		logger:    logger.New("cli"),
	}
}

// Start begins the interface loop and returns when the input ends.
func (h *InputHandler) Start() error {
	h.logger.Print("WordSeg CLI")
	h.logger.Print("type a line and press Enter to segment it (Ctrl+C to exit):")

	scanner := bufio.NewScanner(h.in)
	for {
		fmt.Fprint(h.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(h.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

func (h *InputHandler) handleInput(line string) {
	switch line[0] {
	case '?':
		h.listPrefix(strings.TrimSpace(line[1:]))
	case '+':
		h.addKnown(strings.Fields(line[1:]))
	default:
		h.segmentLine(line)
	}
}

func (h *InputHandler) segmentLine(line string) {
	start := time.Now()
	tokens := h.segmenter.Tokens(line)
	h.logger.Debugf("Took [ %v ] for %d tokens", time.Since(start), len(tokens))

	fmt.Fprintln(h.out, h.render(tokens))

	unknown := vocab.FilterNoise(vocab.Unknown(h.known, h.segmenter.Segment(line)))
	if unknown.Len() == 0 {
		fmt.Fprintln(h.out, "all words known")
		return
	}
	fmt.Fprintf(h.out, "unknown (%d): %s\n", unknown.Len(), strings.Join(unknown.Sorted(), " "))
}

// Render returns line with every token styled by its kind.
func (h *InputHandler) Render(line string) string {
	return h.render(h.segmenter.Tokens(line))
}

func (h *InputHandler) render(tokens []segment.Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch {
		case !tok.Known:
			b.WriteString(h.styles.Unmatched.Render(tok.Text))
		case h.known.Contains(tok.Text):
			b.WriteString(h.styles.Known.Render(tok.Text))
		default:
			b.WriteString(h.styles.Unknown.Render(tok.Text))
		}
	}
	return b.String()
}

func (h *InputHandler) listPrefix(prefix string) {
	if prefix == "" {
		h.logger.Error("Missing prefix after '?'")
		return
	}

	words := h.dict.FindAllWithPrefix(prefix)
	if len(words) == 0 {
		h.logger.Warnf("No dictionary words start with '%s'", prefix)
		return
	}

	fmt.Fprintf(h.out, "%s words start with '%s':\n", utils.FormatWithCommas(len(words)), prefix)
	if h.limit > 0 && len(words) > h.limit {
		words = words[:h.limit]
	}
	for i, w := range words {
		mark := " "
		if h.known.Contains(w) {
			mark = "*"
		}
		fmt.Fprintf(h.out, "%3d. %s %s\n", i+1, mark, w)
	}
}

func (h *InputHandler) addKnown(words []string) {
	if len(words) == 0 {
		h.logger.Error("Missing words after '+'")
		return
	}
	added := 0
	for _, w := range words {
		if h.known.Add(w) {
			added++
		}
	}
	fmt.Fprintf(h.out, "added %d, %s known\n", added, utils.FormatWithCommas(h.known.Len()))
}
