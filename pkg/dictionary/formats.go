package dictionary

import (
	"path/filepath"
	"strings"
)

// FileFormat represents the input file formats the tools read.
type FileFormat int

const (
	FormatUnknown  FileFormat = iota
	FormatWordList            // Plain text, one word per line
	FormatYAML                // Dialogue document in YAML
	FormatJSON                // Dialogue document in JSON
)

// FormatInfo contains metadata about a file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatWordList: {
		Format:      FormatWordList,
		Description: "Plain Text Word List",
		Extensions:  []string{".txt", ".list", ""},
	},
	FormatYAML: {
		Format:      FormatYAML,
		Description: "YAML Dialogue Document",
		Extensions:  []string{".yaml", ".yml"},
	},
	FormatJSON: {
		Format:      FormatJSON,
		Description: "JSON Dialogue Document",
		Extensions:  []string{".json"},
	},
}

// DetectFileFormat guesses the format of a file from its extension.
func DetectFileFormat(filename string) FileFormat {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e == ext {
				return format
			}
		}
	}
	return FormatUnknown
}

// IsDialogueFormat reports whether format holds dialogue documents.
func (f FileFormat) IsDialogueFormat() bool {
	return f == FormatYAML || f == FormatJSON
}

// String returns the format description.
func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "Unknown"
}
