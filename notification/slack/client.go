package slack

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/AirHelp/samplestats/helper"
	"github.com/AirHelp/samplestats/notification"

	"github.com/slack-go/slack"
)

const largestValuesToShow = 10

type Client struct {
	url         string
	icon        string
	username    string
	channel     string
	clusterName string
}

func NewClient(url, channel, clusterName, username string) Client {
	return Client{
		url:         url,
		channel:     channel,
		username:    username,
		clusterName: clusterName,
		icon:        "bar_chart",
	}
}

func (c Client) Kind() string {
	return "slack"
}

func (c Client) Notify(ctx context.Context, payload notification.NotificationPayload) error {
	return slack.PostWebhookContext(ctx, c.url, c.buildMessage(payload))
}

func (c Client) buildMessage(payload notification.NotificationPayload) *slack.WebhookMessage {
	s := payload.Summary

	att := slack.Attachment{
		Color:      "good",
		AuthorIcon: c.icon,
		Pretext:    "Sample summary computed",
		Footer:     fmt.Sprintf("samplestats @ %v", payload.ComputedAt.Format(time.RFC3339)),
		Fields: []slack.AttachmentField{
			{
				Title: "Mean",
				Value: strconv.FormatUint(s.Mean, 10),
				Short: true,
			},
			{
				Title: "Median",
				Value: fmt.Sprintf("%d (%v)", s.Median, s.Policy),
				Short: true,
			},
			{
				Title: "Mode",
				Value: fmt.Sprintf("%d (x%d)", s.Mode, s.ModeCount),
				Short: true,
			},
			{
				Title: "Count",
				Value: strconv.Itoa(s.Count),
				Short: true,
			},
			{
				Title: "Largest values",
				Value: helper.Uint64SliceToString(helper.Last(s.Sorted, largestValuesToShow)),
			},
			{
				Title: "Cluster name",
				Value: c.clusterName,
			},
			{
				Title: "Namespace",
				Value: payload.Namespace,
				Short: true,
			},
			{
				Title: "Environment",
				Value: payload.Environment,
				Short: true,
			},
			{
				Title: "Source",
				Value: payload.Source,
				Short: true,
			},
		},
	}

	return &slack.WebhookMessage{
		Username:    c.username,
		IconEmoji:   c.icon,
		Channel:     c.channel,
		Attachments: []slack.Attachment{att},
	}
}
