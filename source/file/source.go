package file

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Path string `yaml:"path"`
}

type Source struct {
	path string
}

type document struct {
	Values []uint64 `yaml:"values"`
}

var ErrNoPathSpecified = errors.New("no file path provided")

func New(config *Config) (*Source, error) {
	if config.Path == "" {
		return &Source{}, ErrNoPathSpecified
	}

	return &Source{path: config.Path}, nil
}

func (s *Source) Kind() string {
	return "file"
}

func (s *Source) Load(_ context.Context) ([]uint64, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %v: %w", s.path, err)
	}

	doc := document{}
	if err := yaml.UnmarshalStrict(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %v: %w", s.path, err)
	}

	zap.S().Debugf("loaded %d values from %v", len(doc.Values), s.path)

	return doc.Values, nil
}
