package bot

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/megachinese/bot/internal/bot/interfaces"
)

// NewMessage converts a gateway message into the dispatcher's message type.
// Messages posted through a webhook count as bot messages.
func NewMessage(message discord.Message, guildID *snowflake.ID) *interfaces.Message {
	if guildID == nil {
		guildID = message.GuildID
	}

	return &interfaces.Message{
		ID:         message.ID,
		ChannelID:  message.ChannelID,
		GuildID:    guildID,
		AuthorID:   message.Author.ID,
		AuthorName: DisplayName(message.Author),
		AuthorBot:  message.Author.Bot || message.WebhookID != nil,
		Content:    message.Content,
	}
}

// DisplayName returns name#discriminator for legacy accounts and the username otherwise.
func DisplayName(user discord.User) string {
	if user.Discriminator != "" && user.Discriminator != "0" {
		return user.Username + "#" + user.Discriminator
	}

	return user.Username
}

// MemberPermissions combines the @everyone role with the member's roles.
func MemberPermissions(guildID snowflake.ID, roles []discord.Role, memberRoleIDs []snowflake.ID) discord.Permissions {
	assigned := make(map[snowflake.ID]struct{}, len(memberRoleIDs)+1)
	assigned[guildID] = struct{}{}

	for _, id := range memberRoleIDs {
		assigned[id] = struct{}{}
	}

	var permissions discord.Permissions

	for _, role := range roles {
		if _, ok := assigned[role.ID]; ok {
			permissions |= role.Permissions
		}
	}

	return permissions
}

// CanManageTranslations reports whether a member may change translation settings:
// the guild owner, or anyone with Administrator, Manage Server or Manage Channels.
func CanManageTranslations(ownerID, userID snowflake.ID, permissions discord.Permissions) bool {
	if ownerID == userID {
		return true
	}

	return permissions.Has(discord.PermissionAdministrator) ||
		permissions.Has(discord.PermissionManageGuild) ||
		permissions.Has(discord.PermissionManageChannels)
}
