// Package dictionary loads word lists and builds the segmentation
// dictionary from them.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/wordseg/internal/utils"
	"github.com/bastiangx/wordseg/pkg/trie"
	"github.com/charmbracelet/log"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidUTF8 is returned for word lists that are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 encoding")

// maxLineSize bounds a single word-list line.
const maxLineSize = 1 << 20

// Options controls how word-list lines become words.
type Options struct {
	// Clean removes every whitespace and punctuation rune from a line, so
	// "你好！" becomes "你好". Without it only surrounding space is trimmed.
	Clean bool
	// NormalizeNFC puts each word in Unicode normalization form C.
	NormalizeNFC bool
}

// ReadWords reads one word per line from r. Blank lines and lines that end
// up empty after cleaning are skipped. Words keep their file order and
// duplicates are kept.
func ReadWords(r io.Reader, opts Options) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var words []string
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: %w", lineNum, ErrInvalidUTF8)
		}
		if opts.NormalizeNFC {
			line = norm.NFC.String(line)
		}
		if opts.Clean {
			line = utils.CleanText(line)
			if line == "" {
				continue
			}
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

// LoadWords reads the word list at path.
func LoadWords(path string, opts Options) ([]string, error) {
	if format := DetectFileFormat(path); format != FormatWordList {
		log.Warnf("Word list %s has an unexpected extension, reading it as plain text", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	words, err := ReadWords(file, opts)
	if err != nil {
		return nil, fmt.Errorf("word list %s: %w", path, err)
	}
	log.Debugf("Read %d words from %s", len(words), path)
	return words, nil
}

// LoadTrie builds a dictionary from the word list at path.
func LoadTrie(path string, opts Options) (*trie.Trie, error) {
	words, err := LoadWords(path, opts)
	if err != nil {
		return nil, err
	}
	t := trie.Build(words)
	log.Debugf("Dictionary built: %d distinct words, %d nodes", t.Size(), t.NodeCount())
	return t, nil
}
