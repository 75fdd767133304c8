package universe

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML layout of a universe file
type FileConfig struct {
	Groups []Group `yaml:"groups"`
}

// Group is a named list of tickers (a sector, a watchlist)
type Group struct {
	Name    string   `yaml:"name"`
	Tickers []string `yaml:"tickers"`
}

// File reads the universe from a YAML file on every call
type File struct {
	path string
}

// NewFile creates a file-backed universe
func NewFile(path string) *File {
	return &File{path: path}
}

// Name returns the universe name
func (f *File) Name() string {
	return "file:" + f.path
}

// Tickers loads and flattens all groups, in file order
func (f *File) Tickers(ctx context.Context) ([]string, error) {
	cfg, err := LoadFile(f.path)
	if err != nil {
		return nil, err
	}

	var all []string
	for _, g := range cfg.Groups {
		all = append(all, g.Tickers...)
	}
	return dedupe(all), nil
}

// LoadFile decodes a universe file.
// KnownFields(true): 오타/미사용 필드는 즉시 실패
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read universe file: %w", err)
	}

	var cfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse universe file %s: %w", path, err)
	}

	if len(cfg.Groups) == 0 {
		return nil, fmt.Errorf("universe file %s has no groups", path)
	}
	for i, g := range cfg.Groups {
		if g.Name == "" {
			return nil, fmt.Errorf("universe file %s: group %d has no name", path, i)
		}
	}

	return &cfg, nil
}
