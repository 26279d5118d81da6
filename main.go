package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/AirHelp/samplestats/analyzer"
	"github.com/AirHelp/samplestats/config"
	log "github.com/AirHelp/samplestats/logger"
	"github.com/AirHelp/samplestats/notification"
	"github.com/AirHelp/samplestats/notification/slack"
	"github.com/AirHelp/samplestats/report"
	"github.com/AirHelp/samplestats/source"
)

func main() {
	cfg := parseStartingFlags()

	if cfg.Version {
		fmt.Println(versionString())
		os.Exit(0)
	}

	logLevel := "info"
	if cfg.Verbose {
		logLevel = "debug"
	}

	logger := log.InitLogger(cfg.Namespace, cfg.Environment, logLevel)
	defer func() { _ = logger.Sync() }()

	logger.Debugf("Samplestats starting, %v", versionString())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.With(zap.Error(err)).Error("Failed to summarise sample")
		cancel()
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *zap.SugaredLogger) error {
	var sourcesConfig *source.Config

	if cfg.SourcesFile != "" {
		logger.Debugf("Loading sources config from %v", cfg.SourcesFile)

		c, err := source.LoadConfig(cfg.SourcesFile)
		if err != nil {
			return err
		}

		sourcesConfig = c
	}

	src, err := source.New(source.NewSourceInput{
		Ctx:       ctx,
		Config:    sourcesConfig,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize source: %w", err)
	}

	var notifiers []notification.Notifier

	if cfg.SlackWebhookUrl != "" {
		logger.Debug("Initializing Slack client")
		notifiers = append(notifiers, slack.NewClient(cfg.SlackWebhookUrl, cfg.SlackChannel, cfg.ClusterName, "samplestats"))
	}

	a, err := analyzer.New(analyzer.NewAnalyzerInput{
		Source:       src,
		Printer:      report.NewPrinter(os.Stdout),
		Notifiers:    notifiers,
		GlobalConfig: cfg,
		Logger:       logger,
	})
	if err != nil {
		return err
	}

	_, err = a.Run(ctx)

	return err
}

func parseStartingFlags() config.Config {
	cfg := config.NewWithDefaults()
	flag.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Debug mode")
	flag.BoolVar(&cfg.Version, "version", false, "Prints version number")

	flag.StringVar(&cfg.Environment, "environment", cfg.Environment, "Environment name")
	flag.StringVar(&cfg.Namespace, "namespace", cfg.Namespace, "Namespace to read config maps from")
	flag.StringVar(&cfg.SourcesFile, "config", "", "Path to yaml file describing where to load the sample from")
	flag.StringVar(&cfg.MedianPolicy, "median_policy", cfg.MedianPolicy, "Median of even-length samples: lower, upper or average")
	flag.StringVar(&cfg.SlackWebhookUrl, "slack_url", "", "Slack Webhook URL to use")
	flag.StringVar(&cfg.SlackChannel, "slack_channel", "", "Slack channel to send messages to")
	flag.StringVar(&cfg.ClusterName, "cluster_name", "", "Name of cluster")
	flag.Parse()

	return cfg
}
