package notification

import (
	"context"
	"time"

	"github.com/AirHelp/samplestats/stat"
)

//go:generate mockgen -destination=mock/notification_mock.go -package notificationMock github.com/AirHelp/samplestats/notification Notifier
type Notifier interface {
	Notify(context.Context, NotificationPayload) error
	Kind() string
}

type NotificationPayload struct {
	Summary     stat.Summary
	Environment string
	Namespace   string
	ComputedAt  time.Time
	Source      string
}
