// Package utils holds small adapters shared by the HTTP layer.
package utils

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// AnalyticsClient wraps posthog.Client so callers need not care whether
// analytics is configured.
type AnalyticsClient struct {
	client posthog.Client
	logger *slog.Logger
}

// NewAnalyticsClient returns a disabled client when apiKey is empty.
func NewAnalyticsClient(apiKey, endpoint string, logger *slog.Logger) *AnalyticsClient {
	if apiKey == "" {
		logger.Info("PostHog API key not set, analytics disabled")
		return &AnalyticsClient{logger: logger}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Warn("Failed to initialise PostHog client, analytics disabled", slog.String("error", err.Error()))
		return &AnalyticsClient{logger: logger}
	}
	return &AnalyticsClient{client: client, logger: logger}
}

func (a *AnalyticsClient) IsInitialized() bool {
	return a != nil && a.client != nil
}

func (a *AnalyticsClient) Enqueue(distinctID, event string, properties map[string]any) {
	if !a.IsInitialized() {
		return
	}
	err := a.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	})
	if err != nil && a.logger != nil {
		a.logger.Warn("Failed to enqueue analytics event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

func (a *AnalyticsClient) Close() {
	if !a.IsInitialized() {
		return
	}
	_ = a.client.Close()
}
