package commands

// Fixed replies shared by several handlers.
const (
	serverOnlyMessage     = "This command can only be used in a server."
	permissionDeniedReply = "❌ You need Administrator, Manage Server, or Manage Channels permission to use this command."
	invalidWebhookReply   = "Invalid webhook URL. Please provide a valid Discord webhook URL."
	logNotFoundReply      = "❌ No translation logging found for that channel"
	channelTakenReply     = "❌ That channel is already configured by another server."
	noChannelsReply       = "No translation channels configured for this server."
)

const helpTemplate = `**MegaChinese Translation Bot** 🇨🇳

**Translation Features:**
• Automatic translation of messages in configured channels
• Simplified and Traditional Chinese plus common world languages
• Multi-provider fallback (LibreTranslate, MyMemory, Lingva)

**Commands:**

` + "`{p}set-log <language> <channel-id> <webhook-url>`" + `
Set up translation logging for a channel
Example: ` + "`{p}set-log chinese #translations https://discord.com/api/webhooks/...`" + `

` + "`{p}remove-log <channel-id>`" + `
Remove translation logging from a channel

` + "`{p}list-logs`" + `
List all configured translation channels in this server

` + "`{p}translate <source-lang> <target-lang> <text>`" + `
Manually translate text
Example: ` + "`{p}translate zh en 你好世界`" + `

` + "`{p}languages`" + `
Show all supported languages

` + "`{p}stats`" + `
Show translation statistics for this server

**How Translation Logging Works:**
Every message sent in a configured channel is translated and posted to the webhook as:

` + "```" + `
username (ID: 123456789) sent this:
Original message here

Which translates to this:
Translated message here
` + "```" + `

**Note:** The bot needs permission to read messages in the configured channels.`
