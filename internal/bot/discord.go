package bot

import (
	"context"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// NewSession creates a Discord session wired to the handler. Callers own
// the session lifecycle (Open/Close). Replies go back to the originating
// channel; empty replies send nothing.
func NewSession(token string, handler *Handler) (*discordgo.Session, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		msg := Message{
			AuthorID:   m.Author.ID,
			AuthorName: m.Author.Username,
			Content:    m.Content,
			FromSelf:   s.State.User != nil && m.Author.ID == s.State.User.ID,
		}

		reply := handler.HandleMessage(context.Background(), msg)
		if reply == "" {
			return
		}
		if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
			slog.Error("Failed to send reply", "channel_id", m.ChannelID, "error", err)
		}
	})

	return session, nil
}
