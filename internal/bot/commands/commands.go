// Package commands implements the prefixed text commands of the bot.
package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/disgoorg/snowflake/v2"
	"github.com/megachinese/bot/internal/bot/interfaces"
	"github.com/megachinese/bot/pkg/utils"
	"go.uber.org/zap"
)

// ErrInvalidChannelID is returned when a channel argument is not a channel id or mention.
var ErrInvalidChannelID = errors.New("invalid channel id")

// webhookPrefixes are the accepted Discord webhook URL prefixes.
var webhookPrefixes = []string{
	"https://discord.com/api/webhooks/",
	"https://discordapp.com/api/webhooks/",
}

// Dependencies are the collaborators used by the command handlers.
type Dependencies struct {
	Channels      interfaces.ChannelDirectory
	History       interfaces.HistoryStore
	GuildSettings interfaces.GuildSettingsStore
	Translator    interfaces.Translator
	Responder     interfaces.Responder
	Permissions   interfaces.PermissionChecker
	Prefix        string
}

// Handler implements every command on top of its dependencies.
type Handler struct {
	channels      interfaces.ChannelDirectory
	history       interfaces.HistoryStore
	guildSettings interfaces.GuildSettingsStore
	translator    interfaces.Translator
	responder     interfaces.Responder
	permissions   interfaces.PermissionChecker
	prefix        string
	helpText      string
	languagesText string
	logger        *zap.Logger
}

// New creates a command handler.
func New(deps Dependencies, logger *zap.Logger) *Handler {
	return &Handler{
		channels:      deps.Channels,
		history:       deps.History,
		guildSettings: deps.GuildSettings,
		translator:    deps.Translator,
		responder:     deps.Responder,
		permissions:   deps.Permissions,
		prefix:        deps.Prefix,
		helpText:      strings.ReplaceAll(helpTemplate, "{p}", deps.Prefix),
		languagesText: formatLanguages(),
		logger:        logger.Named("commands"),
	}
}

// Registry returns a registry with every command and alias bound to this handler.
func (h *Handler) Registry() *Registry {
	r := NewRegistry()
	r.Register(h.Help, "help", "h")
	r.Register(h.SetLog, "set-log")
	r.Register(h.RemoveLog, "remove-log")
	r.Register(h.ListLogs, "list-logs")
	r.Register(h.Translate, "translate")
	r.Register(h.Languages, "languages", "langs")
	r.Register(h.Stats, "stats")

	return r
}

// Help replies with the usage text.
func (h *Handler) Help(ctx context.Context, msg *interfaces.Message, _ []string) error {
	return h.reply(ctx, msg, h.helpText)
}

// Languages replies with the supported language list.
func (h *Handler) Languages(ctx context.Context, msg *interfaces.Message, _ []string) error {
	return h.reply(ctx, msg, h.languagesText)
}

// reply sends content as an answer to msg, cut to the message length limit.
func (h *Handler) reply(ctx context.Context, msg *interfaces.Message, content string) error {
	if err := h.responder.Reply(ctx, msg, utils.TruncateMessage(content, utils.MaxMessageLength)); err != nil {
		return fmt.Errorf("failed to send reply: %w", err)
	}

	return nil
}

// typing shows the typing indicator. Failures only affect cosmetics and are logged.
func (h *Handler) typing(ctx context.Context, channelID snowflake.ID) {
	if err := h.responder.Typing(ctx, channelID); err != nil {
		h.logger.Debug("Failed to send typing indicator",
			zap.Uint64("channelID", uint64(channelID)),
			zap.Error(err))
	}
}

// requireGuildAdmin replies and reports false when msg is outside a guild or its
// author lacks management permissions.
func (h *Handler) requireGuildAdmin(ctx context.Context, msg *interfaces.Message) (bool, error) {
	if !msg.InGuild() {
		return false, h.reply(ctx, msg, serverOnlyMessage)
	}

	isAdmin, err := h.permissions.IsAdmin(ctx, *msg.GuildID, msg.AuthorID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve permissions: %w", err)
	}

	if !isAdmin {
		h.logger.Debug("Rejected command from non-admin",
			zap.Uint64("guildID", uint64(*msg.GuildID)),
			zap.Uint64("userID", uint64(msg.AuthorID)))

		return false, h.reply(ctx, msg, permissionDeniedReply)
	}

	return true, nil
}

// ParseChannelID accepts a bare channel id or a <#id> mention.
func ParseChannelID(input string) (snowflake.ID, error) {
	trimmed := strings.TrimSpace(input)
	if inner, ok := strings.CutPrefix(trimmed, "<#"); ok {
		trimmed = strings.TrimSuffix(inner, ">")
	}

	id, err := snowflake.Parse(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidChannelID, input, err)
	}

	return id, nil
}

// IsValidWebhookURL reports whether url points at a Discord webhook.
func IsValidWebhookURL(url string) bool {
	for _, prefix := range webhookPrefixes {
		if strings.HasPrefix(url, prefix) {
			return true
		}
	}

	return false
}
