package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"github.com/megachinese/bot/internal/bot/commands"
	"github.com/megachinese/bot/internal/bot/dispatcher"
	"github.com/megachinese/bot/internal/bot/interfaces"
	"github.com/megachinese/bot/internal/bot/webhook"
	"github.com/megachinese/bot/internal/database"
	"github.com/megachinese/bot/internal/setup/config"
	"github.com/megachinese/bot/internal/translator"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// Bot connects the Discord gateway to the dispatcher. Each message event is
// handled on its own goroutine and tracked until shutdown.
type Bot struct {
	client          bot.Client
	dispatcher      *dispatcher.Dispatcher
	logger          *zap.Logger
	inflight        conc.WaitGroup
	ctx             context.Context
	cancel          context.CancelFunc
	shutdownTimeout time.Duration
}

// New initializes a Bot with its command handlers and dispatcher and configures the
// Discord client with the intents needed to read guild and direct messages.
func New(
	cfg *config.Config, db database.Client, translation *translator.Service, logger *zap.Logger,
) (*Bot, error) {
	ctx, cancel := context.WithCancel(context.Background())

	b := &Bot{
		logger:          logger.Named("bot"),
		ctx:             ctx,
		cancel:          cancel,
		shutdownTimeout: time.Duration(cfg.Discord.ShutdownTimeout) * time.Millisecond,
	}

	repo := db.Model()
	prefix := cfg.Discord.CommandPrefix

	handler := commands.New(commands.Dependencies{
		Channels:      repo.Channel(),
		History:       repo.History(),
		GuildSettings: repo.GuildSetting(),
		Translator:    translation,
		Responder:     b,
		Permissions:   b,
		Prefix:        prefix,
	}, logger)

	b.dispatcher = dispatcher.New(dispatcher.Dependencies{
		Registry:      handler.Registry(),
		Channels:      repo.Channel(),
		History:       repo.History(),
		GuildSettings: repo.GuildSetting(),
		Translator:    translation,
		Webhooks: webhook.New(
			cfg.Webhook.Username,
			time.Duration(cfg.Webhook.Timeout)*time.Millisecond,
			logger,
		),
		Responder:     b,
		Prefix:        prefix,
	}, logger)

	client, err := disgo.New(cfg.Discord.Token,
		bot.WithGatewayConfigOpts(
			gateway.WithIntents(
				gateway.IntentGuilds,
				gateway.IntentGuildMessages,
				gateway.IntentMessageContent,
				gateway.IntentDirectMessages,
			),
		),
		bot.WithEventListeners(&events.ListenerAdapter{
			OnReady:         b.handleReady,
			OnMessageCreate: b.handleMessageCreate,
		}),
	)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to create discord client: %w", err)
	}

	b.client = client

	return b, nil
}

// Start opens the gateway connection.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot")

	if err := b.client.OpenGateway(ctx); err != nil {
		return fmt.Errorf("failed to open gateway: %w", err)
	}

	return nil
}

// Close stops receiving events, then waits for in-flight messages up to the
// shutdown timeout before cancelling them.
func (b *Bot) Close(ctx context.Context) {
	b.logger.Info("Closing bot")
	b.client.Close(ctx)

	done := make(chan struct{})

	go func() {
		defer close(done)

		if recovered := b.inflight.WaitAndRecover(); recovered != nil {
			b.logger.Error("Panic in message handler", zap.String("panic", recovered.String()))
		}
	}()

	select {
	case <-done:
		b.logger.Info("All message handlers finished")
	case <-time.After(b.shutdownTimeout):
		b.logger.Warn("Timed out waiting for message handlers", zap.Duration("timeout", b.shutdownTimeout))
	}

	b.cancel()
}

// Reply implements interfaces.Responder.
func (b *Bot) Reply(ctx context.Context, msg *interfaces.Message, content string) error {
	_, err := b.client.Rest().CreateMessage(msg.ChannelID,
		discord.NewMessageCreateBuilder().
			SetContent(content).
			SetAllowedMentions(&discord.AllowedMentions{}).
			Build(),
		rest.WithCtx(ctx))

	return err
}

// Typing implements interfaces.Responder.
func (b *Bot) Typing(ctx context.Context, channelID snowflake.ID) error {
	return b.client.Rest().SendTyping(channelID, rest.WithCtx(ctx))
}

// IsAdmin implements interfaces.PermissionChecker using the guild and member from REST.
func (b *Bot) IsAdmin(ctx context.Context, guildID, userID snowflake.ID) (bool, error) {
	guild, err := b.client.Rest().GetGuild(guildID, false, rest.WithCtx(ctx))
	if err != nil {
		return false, fmt.Errorf("failed to get guild: %w", err)
	}

	if guild.OwnerID == userID {
		return true, nil
	}

	member, err := b.client.Rest().GetMember(guildID, userID, rest.WithCtx(ctx))
	if err != nil {
		return false, fmt.Errorf("failed to get member: %w", err)
	}

	return CanManageTranslations(guild.OwnerID, userID, MemberPermissions(guildID, guild.Roles, member.RoleIDs)), nil
}

// handleReady logs the connected identity.
func (b *Bot) handleReady(event *events.Ready) {
	b.logger.Info("Connected to Discord",
		zap.String("user", event.User.Username),
		zap.Uint64("userID", uint64(event.User.ID)),
		zap.Int("guilds", len(event.Guilds)))
}

// handleMessageCreate converts the event and dispatches it on a tracked goroutine.
func (b *Bot) handleMessageCreate(event *events.MessageCreate) {
	msg := NewMessage(event.Message, event.GuildID)

	b.inflight.Go(func() {
		start := time.Now()

		defer func() {
			if r := recover(); r != nil {
				b.logger.Error("Panic in message handler",
					zap.Any("panic", r),
					zap.Uint64("messageID", uint64(msg.ID)))
			}

			b.logger.Debug("Message handled",
				zap.Uint64("messageID", uint64(msg.ID)),
				zap.Duration("duration", time.Since(start)))
		}()

		b.dispatcher.HandleMessage(b.ctx, msg)
	})
}
