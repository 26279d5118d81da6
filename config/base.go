package config

type Config struct {
	Version bool
	Verbose bool

	Environment     string
	Namespace       string
	SourcesFile     string
	MedianPolicy    string
	SlackWebhookUrl string
	SlackChannel    string
	ClusterName     string
}

func NewWithDefaults() Config {
	return Config{
		Environment:  "local",
		Namespace:    "default",
		MedianPolicy: "lower",
	}
}
