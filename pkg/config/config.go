/*
Package config manages the TOML config for wordseg.

	[vocab]
	path = ""
	clean = true
	normalize_nfc = false

	[output]
	random_order = false
	seed = 0
	filter_noise = true

	[server]
	max_text_len = 4096
	max_prefix_results = 64

Values missing from the file keep their defaults. A file that fails to
decode into the struct is re-read key by key so valid entries still apply.
*/
package config

import (
	"path/filepath"

	"github.com/bastiangx/wordseg/internal/utils"
	"github.com/charmbracelet/log"
)

// DefaultFileName is the config file name inside the config directory.
const DefaultFileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Vocab  VocabConfig  `toml:"vocab"`
	Output OutputConfig `toml:"output"`
	Server ServerConfig `toml:"server"`
}

// VocabConfig controls how word lists are read.
type VocabConfig struct {
	// Path of the segmentation vocabulary. Empty means words/10K.txt next
	// to the install directory.
	Path         string `toml:"path"`
	Clean        bool   `toml:"clean"`
	NormalizeNFC bool   `toml:"normalize_nfc"`
}

// OutputConfig controls how word lists are printed.
type OutputConfig struct {
	RandomOrder bool  `toml:"random_order"`
	// Seed fixes the shuffle; 0 picks a fresh random order each run.
	Seed        int64 `toml:"seed"`
	FilterNoise bool  `toml:"filter_noise"`
}

// ServerConfig has IPC server limits.
type ServerConfig struct {
	MaxTextLen       int `toml:"max_text_len"`
	MaxPrefixResults int `toml:"max_prefix_results"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Vocab: VocabConfig{
			Path:         "",
			Clean:        true,
			NormalizeNFC: false,
		},
		Output: OutputConfig{
			RandomOrder: false,
			Seed:        0,
			FilterNoise: true,
		},
		Server: ServerConfig{
			MaxTextLen:       4096,
			MaxPrefixResults: 64,
		},
	}
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path inside the config dir
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath, defaultPath string) (*Config, string) {
	if customConfigPath != "" {
		if utils.FileExists(customConfigPath) {
			config, err := LoadConfig(customConfigPath)
			if err == nil {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath
			}
			log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
		} else {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		}
	}

	if defaultPath == "" {
		return DefaultConfig(), ""
	}
	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse keeps every well-typed key of a file whose struct decode
// failed
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "vocab"); ok {
		extractVocabConfig(section, &config.Vocab)
	}
	if section, ok := utils.ExtractSection(tempConfig, "output"); ok {
		extractOutputConfig(section, &config.Output)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	return config, nil
}

func extractVocabConfig(data map[string]any, vocab *VocabConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		vocab.Path = val
	}
	if val, ok := utils.ExtractBool(data, "clean"); ok {
		vocab.Clean = val
	}
	if val, ok := utils.ExtractBool(data, "normalize_nfc"); ok {
		vocab.NormalizeNFC = val
	}
}

func extractOutputConfig(data map[string]any, output *OutputConfig) {
	if val, ok := utils.ExtractBool(data, "random_order"); ok {
		output.RandomOrder = val
	}
	if val, ok := utils.ExtractInt64(data, "seed"); ok {
		output.Seed = int64(val)
	}
	if val, ok := utils.ExtractBool(data, "filter_noise"); ok {
		output.FilterNoise = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_text_len"); ok {
		server.MaxTextLen = val
	}
	if val, ok := utils.ExtractInt64(data, "max_prefix_results"); ok {
		server.MaxPrefixResults = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
