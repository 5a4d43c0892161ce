package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleList = "你好\n\n  世界  \n你好！\n「再见」\n。\n\thello world\n"

func TestReadWordsClean(t *testing.T) {
	words, err := ReadWords(strings.NewReader(sampleList), Options{Clean: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"你好", "世界", "你好", "再见", "helloworld"}, words)
}

func TestReadWordsTrimOnly(t *testing.T) {
	words, err := ReadWords(strings.NewReader(sampleList), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"你好", "世界", "你好！", "「再见」", "。", "hello world"}, words)
}

func TestReadWordsNFC(t *testing.T) {
	// "é" as e + combining acute accent
	words, err := ReadWords(strings.NewReader("cafe\u0301\n"), Options{NormalizeNFC: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"caf\u00e9"}, words)
}

func TestReadWordsInvalidUTF8(t *testing.T) {
	_, err := ReadWords(strings.NewReader("你好\n\xff\xfe\n"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidUTF8))
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoadTrie(t *testing.T) {
	path := filepath.Join(t.TempDir(), "10K.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleList), 0o644))

	dict, err := LoadTrie(path, Options{Clean: true})
	require.NoError(t, err)
	assert.Equal(t, 4, dict.Size())
	assert.True(t, dict.Search("再见"))
	assert.False(t, dict.Search("你好！"))
}

func TestLoadWordsMissingFile(t *testing.T) {
	_, err := LoadWords(filepath.Join(t.TempDir(), "missing.txt"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestDetectFileFormat(t *testing.T) {
	testCases := map[string]FileFormat{
		"words/10K.txt":  FormatWordList,
		"known":          FormatWordList,
		"dialogues.yaml": FormatYAML,
		"dialogues.YML":  FormatYAML,
		"dialogues.json": FormatJSON,
		"dict_0001.bin":  FormatUnknown,
	}
	for name, expected := range testCases {
		assert.Equal(t, expected, DetectFileFormat(name), name)
	}
	assert.True(t, FormatJSON.IsDialogueFormat())
	assert.False(t, FormatWordList.IsDialogueFormat())
}
