package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.PostsDir == "" {
		cfg.PostsDir = DefaultPostsDir
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}

	if err := validateRelPath("posts-dir", cfg.PostsDir); err != nil {
		return err
	}
	if err := validateRelPath("output", cfg.Output); err != nil {
		return err
	}
	if strings.HasSuffix(cfg.Output, "/") || filepath.Clean(cfg.Output) == "." {
		return fmt.Errorf("config: 'output' must name a file, got %q", cfg.Output)
	}
	if filepath.Clean(cfg.Output) == filepath.Clean(cfg.PostsDir) {
		return fmt.Errorf("config: 'output' and 'posts-dir' must differ")
	}

	if _, err := language.Parse(cfg.Locale); err != nil {
		return fmt.Errorf("config: invalid locale %q: %w", cfg.Locale, err)
	}
	return nil
}

// validateRelPath rejects paths that would resolve outside the project root.
func validateRelPath(key, p string) error {
	if filepath.IsAbs(p) {
		return fmt.Errorf("config: '%s' must be relative to the project root, got %q", key, p)
	}
	clean := filepath.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return fmt.Errorf("config: '%s' must not escape the project root, got %q", key, p)
	}
	return nil
}
