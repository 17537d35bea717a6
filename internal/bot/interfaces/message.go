package interfaces

import "github.com/disgoorg/snowflake/v2"

// Message is an inbound chat message as seen by the dispatcher and command handlers.
// It carries only what the handlers need, so they do not depend on gateway types.
type Message struct {
	ID        snowflake.ID
	ChannelID snowflake.ID
	// GuildID is nil for direct messages.
	GuildID    *snowflake.ID
	AuthorID   snowflake.ID
	AuthorName string
	// AuthorBot is set for bot and webhook authors.
	AuthorBot bool
	Content   string
}

// InGuild reports whether the message was posted in a server.
func (m *Message) InGuild() bool {
	return m.GuildID != nil
}
