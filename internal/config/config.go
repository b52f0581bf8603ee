package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const defaultDirName = ".wsctl"

// Config holds the resolved runtime settings.
type Config struct {
	RootDir    string
	APIBaseURL string
	APIToken   string
}

// Load resolves configuration from, in order, the --root flag value, the
// environment, and an optional .env file in the working directory.
func Load(rootOverride string) (Config, error) {
	// Missing .env is fine; explicit env always wins over file values.
	_ = godotenv.Load()

	rootDir, err := resolveRoot(rootOverride)
	if err != nil {
		return Config{}, err
	}
	return Config{
		RootDir:    rootDir,
		APIBaseURL: strings.TrimSpace(os.Getenv("BIJMANTRA_API_URL")),
		APIToken:   strings.TrimSpace(os.Getenv("BIJMANTRA_API_TOKEN")),
	}, nil
}

// RemoteEnabled reports whether workspace operations should go through
// the platform API instead of the local store.
func (c Config) RemoteEnabled() bool {
	return c.APIBaseURL != ""
}

func resolveRoot(override string) (string, error) {
	if strings.TrimSpace(override) != "" {
		return filepath.Clean(override), nil
	}
	if env := strings.TrimSpace(os.Getenv("WSCTL_ROOT")); env != "" {
		return filepath.Clean(env), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, defaultDirName), nil
}
