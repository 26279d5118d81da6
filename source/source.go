package source

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/AirHelp/samplestats/k8s"
	"github.com/AirHelp/samplestats/source/configmap"
	"github.com/AirHelp/samplestats/source/file"
	"github.com/AirHelp/samplestats/source/endpoint"
	"github.com/AirHelp/samplestats/source/literal"
	"github.com/AirHelp/samplestats/source/redis"
	"github.com/AirHelp/samplestats/source/sqs"
)

//go:generate mockgen -destination=mock/source_mock.go -package sourceMock github.com/AirHelp/samplestats/source Source
type Source interface {
	Kind() string
	Load(context.Context) ([]uint64, error)
}

type Config struct {
	Literal   *literal.Config   `yaml:"literal"`
	File      *file.Config      `yaml:"file"`
	Redis     *redis.Config     `yaml:"redis"`
	Sqs       *sqs.Config       `yaml:"sqs"`
	Endpoint  *endpoint.Config  `yaml:"endpoint"`
	ConfigMap *configmap.Config `yaml:"configmap"`
}

var ErrSourceNotSpecified = errors.New("no sample source specified")

func ParseConfig(raw []byte) (*Config, error) {
	cfg := Config{}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sources config: %w", err)
	}

	return &cfg, nil
}

func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources config: %w", err)
	}

	return ParseConfig(raw)
}

type NewSourceInput struct {
	Ctx       context.Context
	Config    *Config
	Namespace string
}

// New builds the first configured source. Without any config the built-in
// demonstration sample is used.
func New(i NewSourceInput) (Source, error) {
	if i.Config == nil {
		zap.S().Debug("No sources config given, using literal sample")
		return literal.New(&literal.Config{}), nil
	}

	c := i.Config

	switch {
	case c.Literal != nil:
		return literal.New(c.Literal), nil
	case c.File != nil:
		return file.New(c.File)
	case c.Redis != nil:
		return redis.New(c.Redis)
	case c.Sqs != nil:
		return sqs.New(i.Ctx, c.Sqs)
	case c.Endpoint != nil:
		return endpoint.New(c.Endpoint)
	case c.ConfigMap != nil:
		k8sSvc, err := k8s.New(i.Namespace)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize k8s client: %w", err)
		}

		return configmap.New(c.ConfigMap, k8sSvc)
	default:
		return nil, ErrSourceNotSpecified
	}
}
