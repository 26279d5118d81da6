package analyzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/AirHelp/samplestats/config"
	"github.com/AirHelp/samplestats/notification"
	"github.com/AirHelp/samplestats/source"
	"github.com/AirHelp/samplestats/stat"
)

type Printer interface {
	Print(stat.Summary) error
}

type Analyzer struct {
	source       source.Source
	printer      Printer
	notifiers    []notification.Notifier
	medianPolicy stat.MedianPolicy

	globalConfig config.Config
	logger       *zap.SugaredLogger
}

type NewAnalyzerInput struct {
	Source    source.Source
	Printer   Printer
	Notifiers []notification.Notifier

	GlobalConfig config.Config
	Logger       *zap.SugaredLogger
}

var (
	ErrSourceNotSpecified  = errors.New("no source specified for analyzer")
	ErrPrinterNotSpecified = errors.New("no printer specified for analyzer")
)

// Export `now` function to variable - make it available for stubbing in tests
var now = time.Now

func New(i NewAnalyzerInput) (*Analyzer, error) {
	if i.Source == nil {
		return nil, ErrSourceNotSpecified
	}

	if i.Printer == nil {
		return nil, ErrPrinterNotSpecified
	}

	policy, err := stat.ParseMedianPolicy(i.GlobalConfig.MedianPolicy)
	if err != nil {
		return nil, err
	}

	logger := i.Logger
	if logger == nil {
		logger = zap.S()
	}

	return &Analyzer{
		source:       i.Source,
		printer:      i.Printer,
		notifiers:    i.Notifiers,
		medianPolicy: policy,
		globalConfig: i.GlobalConfig,
		logger:       logger.With("source", i.Source.Kind()),
	}, nil
}

// Run loads the sample once, prints its summary and hands it to notifiers.
// Notifier failures are logged and do not fail the run.
func (a *Analyzer) Run(ctx context.Context) (stat.Summary, error) {
	a.logger.Debug("Loading sample")

	sample, err := a.source.Load(ctx)
	if err != nil {
		return stat.Summary{}, fmt.Errorf("failed to load sample from %v: %w", a.source.Kind(), err)
	}

	a.logger.Debugf("Loaded %d values", len(sample))

	summary, err := stat.Summarize(sample, a.medianPolicy)
	if err != nil {
		return stat.Summary{}, err
	}

	a.logger.Debugf("Computed summary: %+v", summary)

	if err := a.printer.Print(summary); err != nil {
		return summary, fmt.Errorf("failed to print summary: %w", err)
	}

	if len(a.notifiers) > 0 {
		payload := notification.NotificationPayload{
			Summary:     summary,
			Environment: a.globalConfig.Environment,
			Namespace:   a.globalConfig.Namespace,
			ComputedAt:  now(),
			Source:      a.source.Kind(),
		}

		for _, notifier := range a.notifiers {
			if err := notifier.Notify(ctx, payload); err != nil {
				a.logger.With(zap.Error(err)).Warnf("Failed to notify %v", notifier.Kind())
			}
		}
	}

	a.logger.Debug("Finished summarising sample")

	return summary, nil
}
