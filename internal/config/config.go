package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the optional project config file, looked up in the project root.
const FileName = "postindex.yaml"

const (
	DefaultPostsDir = "posts"
	DefaultOutput   = "posts.json"
	DefaultLocale   = "en"
)

type Config struct {
	PostsDir string `yaml:"posts-dir"`
	Output   string `yaml:"output"`
	Locale   string `yaml:"locale"`
}

// Load reads <root>/postindex.yaml and returns a validated Config.
// A missing file yields the defaults.
func Load(root string) (*Config, error) {
	var cfg Config
	data, err := os.ReadFile(filepath.Join(root, FileName))
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("config: parsing %s: %w", FileName, err)
		}
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// PostsPath returns the posts directory resolved against root.
func (c *Config) PostsPath(root string) string {
	return filepath.Join(root, c.PostsDir)
}

// OutputPath returns the output file resolved against root.
func (c *Config) OutputPath(root string) string {
	return filepath.Join(root, c.Output)
}
