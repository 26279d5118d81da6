package literal

import (
	"context"
	"slices"
)

// DefaultValues is the sample summarised when nothing else is configured.
var DefaultValues = []uint64{32, 2, 22, 2, 2, 2, 4, 65, 24, 54, 23, 77, 74, 5, 8, 3, 47, 85}

type Config struct {
	Values []uint64 `yaml:"values"`
}

type Source struct {
	values []uint64
}

func New(config *Config) *Source {
	values := config.Values

	if values == nil {
		values = DefaultValues
	}

	return &Source{values: slices.Clone(values)}
}

func (s *Source) Kind() string {
	return "literal"
}

func (s *Source) Load(_ context.Context) ([]uint64, error) {
	return slices.Clone(s.values), nil
}
