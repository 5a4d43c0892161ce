package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

const appDirName = "wordseg"

// PathResolver locates config and data files relative to the running binary
type PathResolver struct {
	executableDir string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a resolver for the current executable
func NewPathResolver() (*PathResolver, error) {
	execDir, err := GetExecutableDir()
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		homeDir:       homeDir,
		configDir:     configDirFor(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, configDir=%s", execDir, pr.configDir)
	return pr, nil
}

// configDirFor returns the platform config directory
func configDirFor(homeDir string) string {
	switch runtime.GOOS {
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appDirName)
		}
		return filepath.Join(homeDir, "AppData", "Roaming", appDirName)
	default:
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, appDirName)
		}
		return filepath.Join(homeDir, ".config", appDirName)
	}
}

// ConfigDir returns the preferred config directory
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}

// GetConfigPath returns the full path for a config file, falling back to
// writable locations when the config directory cannot be used
func (pr *PathResolver) GetConfigPath(filename string) string {
	candidates := []string{
		pr.configDir,
		filepath.Join(pr.homeDir, "."+appDirName),
		pr.executableDir,
	}
	for i, dir := range candidates {
		if CheckDirStatus(dir).Writable {
			path := filepath.Join(dir, filename)
			if i > 0 {
				log.Warnf("Using fallback config location: %s", path)
			}
			return path
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath
}

// DefaultVocabularyPath returns words/10K.txt in the directory above the
// executable, where the install layout keeps the segmentation vocabulary
func (pr *PathResolver) DefaultVocabularyPath() string {
	return filepath.Join(pr.executableDir, "..", "words", "10K.txt")
}

// ResolveDataFile returns path when it exists as given, otherwise the same
// relative path under the executable directory if that exists there
func (pr *PathResolver) ResolveDataFile(path string) string {
	if path == "" || filepath.IsAbs(path) || FileExists(path) {
		return path
	}
	execRelative := filepath.Join(pr.executableDir, path)
	if FileExists(execRelative) {
		log.Debugf("Resolved %s relative to executable: %s", path, execRelative)
		return execRelative
	}
	return path
}
