package endpoint

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/AirHelp/samplestats/helper"
)

const defaultTimeout = 3 * time.Second

type Config struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Source fetches a sample from an HTTP endpoint whose body lists values
// separated by whitespace or commas.
type Source struct {
	url     string
	timeout time.Duration
}

var ErrNoURLSpecified = errors.New("no url provided")

func New(config *Config) (*Source, error) {
	if config.URL == "" {
		return &Source{}, ErrNoURLSpecified
	}

	timeout := config.Timeout

	if timeout == time.Duration(0) {
		timeout = defaultTimeout
	}

	return &Source{
		url:     config.URL,
		timeout: timeout,
	}, nil
}

func (s *Source) Kind() string {
	return "endpoint"
}

func (s *Source) Load(ctx context.Context) ([]uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get %v: %v", s.url, err)
	}

	defer func() {
		if err := resp.Body.Close(); err != nil {
			zap.S().Error("failed to close response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("expected %v response, got %v", http.StatusOK, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read the response body: %v", err)
	}

	return helper.ParseUints(string(body))
}
