// Package bot interprets chat messages as water tracker commands.
package bot

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hydrohomies/waterbot/internal/metrics"
	"github.com/hydrohomies/waterbot/internal/models"
	"github.com/hydrohomies/waterbot/internal/scoring"
	"github.com/hydrohomies/waterbot/internal/storage"
)

// Message is one inbound chat message, stripped of platform specifics.
type Message struct {
	// AuthorID is the platform's stable identifier for the author.
	AuthorID string

	// AuthorName is the author's display name, used for rendering only.
	AuthorName string

	// Content is the raw text body.
	Content string

	// FromSelf marks messages authored by the bot itself.
	FromSelf bool
}

const (
	replyStoreError = "Sorry, something went wrong talking to the tracker. Try again in a bit."
	replyLogUsage   = "I couldn't read that amount. Use `!log <number>`, e.g. `!log 60`."

	helpText = "**Water Tracker Commands:**\n" +
		"- `!log` → send a number (e.g., 60) to log water in oz\n" +
		"- `!today` → view today's points\n" +
		"- `!leaderboard` → view top points\n" +
		"- `!help` → show this message"
)

// Handler classifies messages and answers them. It keeps no state between
// messages; everything durable lives behind the Store.
type Handler struct {
	store storage.Store
}

// NewHandler creates a Handler over the given storage backend.
func NewHandler(store storage.Store) *Handler {
	return &Handler{store: store}
}

// HandleMessage processes one inbound message and returns the reply text.
// An empty reply means nothing should be sent. Failures never escape: store
// and parse errors are logged and turned into short user-facing replies.
func (h *Handler) HandleMessage(ctx context.Context, msg Message) string {
	if msg.FromSelf {
		return ""
	}

	timer := prometheus.NewTimer(metrics.HandleDuration)
	defer timer.ObserveDuration()

	content := strings.ToLower(strings.TrimSpace(msg.Content))

	if err := h.ensureRegistered(ctx, msg); err != nil {
		slog.Error("Registration check failed", "user_id", msg.AuthorID, "error", err)
		metrics.CommandErrors.WithLabelValues("store").Inc()
		return replyStoreError
	}

	switch {
	case content == "help" || content == "!help":
		metrics.CommandsTotal.WithLabelValues("help").Inc()
		return helpText

	case content == "leaderboard" || content == "!leaderboard":
		metrics.CommandsTotal.WithLabelValues("leaderboard").Inc()
		return h.leaderboard(ctx)

	case content == "today" || content == "!today":
		metrics.CommandsTotal.WithLabelValues("today").Inc()
		return h.today(ctx, msg)

	case strings.Contains(content, "log"):
		metrics.CommandsTotal.WithLabelValues("log").Inc()
		return h.log(ctx, msg, content)

	default:
		metrics.CommandsTotal.WithLabelValues("unrecognized").Inc()
		return ""
	}
}

// ensureRegistered upserts the author on first contact and whenever the
// display name changed since the last upsert. GetUser reports a never-seen
// ID as a nil user, which is the only signal branched on.
func (h *Handler) ensureRegistered(ctx context.Context, msg Message) error {
	user, err := h.store.GetUser(ctx, msg.AuthorID)
	if err != nil {
		return err
	}
	if user != nil && user.Name == msg.AuthorName {
		return nil
	}
	return h.store.UpsertUser(ctx, &models.User{ID: msg.AuthorID, Name: msg.AuthorName})
}

func (h *Handler) leaderboard(ctx context.Context) string {
	day := today()

	daily, err := h.store.DailyLeaderboard(ctx, day)
	if err != nil {
		slog.Error("DailyLeaderboard failed", "date", day, "error", err)
		metrics.CommandErrors.WithLabelValues("store").Inc()
		return replyStoreError
	}

	allTime, err := h.store.AllTimeLeaderboard(ctx)
	if err != nil {
		slog.Error("AllTimeLeaderboard failed", "error", err)
		metrics.CommandErrors.WithLabelValues("store").Inc()
		return replyStoreError
	}

	return renderLeaderboards(daily, allTime)
}

func (h *Handler) today(ctx context.Context, msg Message) string {
	day := today()

	points, err := h.store.DailyPoints(ctx, msg.AuthorID, day)
	if err != nil {
		slog.Error("DailyPoints failed", "user_id", msg.AuthorID, "date", day, "error", err)
		metrics.CommandErrors.WithLabelValues("store").Inc()
		return replyStoreError
	}

	return renderToday(msg.AuthorName, points)
}

// log parses `log <amount>` and appends a record. Classification is by
// substring, so any message containing "log" lands here; anything that is
// not exactly two tokens with a numeric amount gets the usage reply.
func (h *Handler) log(ctx context.Context, msg Message, content string) string {
	fields := strings.Fields(content)
	if len(fields) != 2 {
		metrics.CommandErrors.WithLabelValues("parse").Inc()
		return replyLogUsage
	}

	oz, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		metrics.CommandErrors.WithLabelValues("parse").Inc()
		return replyLogUsage
	}

	points := scoring.Points(oz)
	record := &models.Record{
		UserID: msg.AuthorID,
		Oz:     oz,
		Points: points,
		Date:   today(),
	}
	if err := h.store.InsertRecord(ctx, record); err != nil {
		slog.Error("InsertRecord failed", "user_id", msg.AuthorID, "error", err)
		metrics.CommandErrors.WithLabelValues("store").Inc()
		return replyStoreError
	}

	return renderLogged(oz, points)
}

func today() string {
	return time.Now().Format(models.DateFormat)
}
