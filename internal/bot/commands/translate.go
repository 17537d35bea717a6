package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/megachinese/bot/internal/bot/interfaces"
	"go.uber.org/zap"
)

// Translate runs a one-off translation: translate <source-lang> <target-lang> <text...>.
func (h *Handler) Translate(ctx context.Context, msg *interfaces.Message, args []string) error {
	if len(args) < 3 {
		return h.reply(ctx, msg, fmt.Sprintf(
			"Usage: `%[1]stranslate <source-lang> <target-lang> <text>`\n"+
				"Example: `%[1]stranslate zh en 你好世界`", h.prefix))
	}

	sourceLang, targetLang := args[0], args[1]
	text := strings.Join(args[2:], " ")

	h.typing(ctx, msg.ChannelID)

	translated, err := h.translator.TranslateWithFallback(ctx, text, sourceLang, targetLang)
	if err != nil {
		h.logger.Warn("Manual translation failed",
			zap.Uint64("channelID", uint64(msg.ChannelID)),
			zap.String("source", sourceLang),
			zap.String("target", targetLang),
			zap.Error(err))

		return h.reply(ctx, msg, "❌ Translation failed: "+err.Error())
	}

	return h.reply(ctx, msg, fmt.Sprintf("Translation (%s → %s):\n%s", sourceLang, targetLang, translated))
}
