package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// ChannelCommands returns commands for inspecting and editing translation channels.
func ChannelCommands(deps *CLIDependencies) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "channels",
			Usage: "Manage translation channel configurations",
			Commands: []*cli.Command{
				{
					Name:      "list",
					Usage:     "List active translation channels of a guild",
					ArgsUsage: "GUILD_ID",
					Action:    handleListChannels(deps),
				},
				{
					Name:      "remove",
					Usage:     "Deactivate translation for a channel of a guild",
					ArgsUsage: "GUILD_ID CHANNEL_ID",
					Action:    handleRemoveChannel(deps),
				},
				{
					Name:      "history",
					Usage:     "Show the latest translations of a channel",
					ArgsUsage: "CHANNEL_ID",
					Flags: []cli.Flag{
						&cli.IntFlag{
							Name:  "limit",
							Usage: "Number of records to show",
							Value: 10,
						},
					},
					Action: handleChannelHistory(deps),
				},
			},
		},
	}
}

// handleListChannels handles the 'channels list' command.
func handleListChannels(deps *CLIDependencies) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		ids, err := parseIDArgs(c, ErrGuildRequired)
		if err != nil {
			return err
		}

		guildID := ids[0]

		channels, err := deps.Repo.Channel().ListByGuild(ctx, guildID)
		if err != nil {
			return err
		}

		deps.Logger.Info("Translation channels", zap.Uint64("guildID", guildID), zap.Int("count", len(channels)))

		for _, channel := range channels {
			deps.Logger.Info("Channel",
				zap.Uint64("channelID", channel.ChannelID),
				zap.String("source", channel.SourceLanguage),
				zap.String("target", channel.TargetLanguage),
				zap.Time("updatedAt", channel.UpdatedAt))
		}

		return nil
	}
}

// handleRemoveChannel handles the 'channels remove' command.
func handleRemoveChannel(deps *CLIDependencies) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		ids, err := parseIDArgs(c, ErrGuildRequired, ErrChannelRequired)
		if err != nil {
			return err
		}

		guildID, channelID := ids[0], ids[1]

		removed, err := deps.Repo.Channel().Deactivate(ctx, guildID, channelID)
		if err != nil {
			return err
		}

		if !removed {
			deps.Logger.Info("No active translation channel found",
				zap.Uint64("guildID", guildID),
				zap.Uint64("channelID", channelID))

			return nil
		}

		deps.Logger.Info("Deactivated translation channel",
			zap.Uint64("guildID", guildID),
			zap.Uint64("channelID", channelID))

		return nil
	}
}

// handleChannelHistory handles the 'channels history' command.
func handleChannelHistory(deps *CLIDependencies) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		ids, err := parseIDArgs(c, ErrChannelRequired)
		if err != nil {
			return err
		}

		records, err := deps.Repo.History().ListRecentByChannel(ctx, ids[0], atLeastOne(c.Int("limit")))
		if err != nil {
			return err
		}

		for _, record := range records {
			deps.Logger.Info("Translation",
				zap.Uint64("userID", record.UserID),
				zap.String("source", record.SourceLanguage),
				zap.String("target", record.TargetLanguage),
				zap.String("original", record.OriginalMessage),
				zap.String("translated", record.TranslatedMessage),
				zap.String("at", record.CreatedAt.Format(time.RFC3339)))
		}

		return nil
	}
}

// parseIDArgs reads the numeric arguments of a command. Each missing argument
// reports the error at its position.
func parseIDArgs(c *cli.Command, missing ...error) ([]uint64, error) {
	if c.Args().Len() < len(missing) {
		return nil, missing[c.Args().Len()]
	}

	if c.Args().Len() > len(missing) {
		return nil, fmt.Errorf("%w: expected %d arguments, got %d", ErrArgumentCount, len(missing), c.Args().Len())
	}

	ids := make([]uint64, len(missing))

	for i := range missing {
		id, err := parseID(c.Args().Get(i))
		if err != nil {
			return nil, err
		}

		ids[i] = id
	}

	return ids, nil
}

// parseID parses a numeric Discord id.
func parseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", raw, err)
	}

	return id, nil
}

// atLeastOne converts an int flag value to a positive int.
func atLeastOne(v int64) int {
	return int(max(v, 1))
}
