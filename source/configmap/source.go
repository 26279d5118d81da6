package configmap

import (
	"context"
	"errors"
	"fmt"

	corev1 "k8s.io/api/core/v1"

	"github.com/AirHelp/samplestats/helper"
)

const defaultKey = "values"

type K8SClient interface {
	GetConfigMap(context.Context, string) (*corev1.ConfigMap, error)
}

type Config struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
}

type Source struct {
	k8sService K8SClient
	name       string
	key        string
}

var ErrNoNameSpecified = errors.New("no config map name provided")

func New(config *Config, k8sSvc K8SClient) (*Source, error) {
	if config.Name == "" {
		return &Source{}, ErrNoNameSpecified
	}

	key := config.Key

	if key == "" {
		key = defaultKey
	}

	return &Source{
		k8sService: k8sSvc,
		name:       config.Name,
		key:        key,
	}, nil
}

func (s *Source) Kind() string {
	return "configmap"
}

func (s *Source) Load(ctx context.Context) ([]uint64, error) {
	configMap, err := s.k8sService.GetConfigMap(ctx, s.name)
	if err != nil {
		return nil, err
	}

	raw, ok := configMap.Data[s.key]
	if !ok {
		return nil, fmt.Errorf("key %v not found in config map %v", s.key, s.name)
	}

	return helper.ParseUints(raw)
}
