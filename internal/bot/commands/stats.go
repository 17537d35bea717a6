package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/megachinese/bot/internal/bot/interfaces"
	"github.com/sourcegraph/conc/pool"
)

// statsWindow is the trailing window of the recent translation count.
const statsWindow = 24 * time.Hour

// Stats reports translation counts for the current guild.
func (h *Handler) Stats(ctx context.Context, msg *interfaces.Message, _ []string) error {
	if !msg.InGuild() {
		return h.reply(ctx, msg, serverOnlyMessage)
	}

	guildID := uint64(*msg.GuildID)

	var (
		p            = pool.New().WithContext(ctx)
		channelCount int
		totalCount   int
		recentCount  int
	)

	p.Go(func(ctx context.Context) error {
		count, err := h.channels.CountActiveByGuild(ctx, guildID)
		if err != nil {
			return fmt.Errorf("failed to count channels: %w", err)
		}

		channelCount = count

		return nil
	})

	p.Go(func(ctx context.Context) error {
		count, err := h.history.CountByGuild(ctx, guildID)
		if err != nil {
			return fmt.Errorf("failed to count translations: %w", err)
		}

		totalCount = count

		return nil
	})

	p.Go(func(ctx context.Context) error {
		count, err := h.history.CountByGuildSince(ctx, guildID, time.Now().Add(-statsWindow))
		if err != nil {
			return fmt.Errorf("failed to count recent translations: %w", err)
		}

		recentCount = count

		return nil
	})

	if err := p.Wait(); err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("**Translation Statistics**\n\n")
	sb.WriteString("📊 **Server Stats:**\n")
	fmt.Fprintf(&sb, "• Active translation channels: %d\n", channelCount)
	fmt.Fprintf(&sb, "• Total translations: %d\n", totalCount)
	fmt.Fprintf(&sb, "• Translations (24h): %d\n\n", recentCount)
	sb.WriteString("**Translation Providers:**\n")

	for i, name := range h.translator.ProviderNames() {
		if i == 0 {
			fmt.Fprintf(&sb, "• Primary: %s\n", name)
			continue
		}

		fmt.Fprintf(&sb, "• Fallback %d: %s\n", i, name)
	}

	fmt.Fprintf(&sb, "\nUse `%slist-logs` to see configured channels.", h.prefix)

	return h.reply(ctx, msg, sb.String())
}
