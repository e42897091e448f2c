// Package metrics defines the Prometheus instruments for the bot.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommandsTotal counts handled messages by classified command
	// (help, leaderboard, today, log, unrecognized).
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waterbot_commands_total",
		Help: "Messages handled, by classified command.",
	}, []string{"command"})

	// CommandErrors counts handler failures by kind (store, parse).
	CommandErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waterbot_command_errors_total",
		Help: "Handler failures, by error kind.",
	}, []string{"kind"})

	// HandleDuration observes end-to-end message handling time,
	// including remote store round trips.
	HandleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "waterbot_handle_duration_seconds",
		Help:    "Message handling duration in seconds.",
		Buckets: prometheus.DefBuckets,
	})
)
