// Package fakes provides in-memory collaborators for testing command and dispatcher code.
package fakes

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/megachinese/bot/internal/bot/interfaces"
	"github.com/megachinese/bot/internal/database/types"
	"github.com/megachinese/bot/internal/translator"
)

var (
	_ interfaces.ChannelDirectory   = (*Channels)(nil)
	_ interfaces.HistoryStore       = (*History)(nil)
	_ interfaces.GuildSettingsStore = (*GuildSettings)(nil)
	_ interfaces.Responder          = (*Responder)(nil)
	_ interfaces.PermissionChecker  = (*Permissions)(nil)
	_ translator.Provider           = (*Provider)(nil)
)

// Channels is a map backed channel directory with upsert semantics.
type Channels struct {
	mu      sync.Mutex
	rows    map[uint64]*types.TranslationChannel
	nextID  int64
	Calls   int
	Err     error
	LookErr error
}

// NewChannels creates an empty directory.
func NewChannels() *Channels {
	return &Channels{rows: make(map[uint64]*types.TranslationChannel)}
}

func (c *Channels) Upsert(_ context.Context, channel *types.TranslationChannel) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Calls++
	if c.Err != nil {
		return c.Err
	}

	now := time.Now()

	if existing, ok := c.rows[channel.ChannelID]; ok {
		if existing.GuildID != channel.GuildID {
			return types.ErrChannelOwnedByOtherGuild
		}

		existing.WebhookURL = channel.WebhookURL
		existing.SourceLanguage = channel.SourceLanguage
		existing.TargetLanguage = channel.TargetLanguage
		existing.IsActive = true
		existing.UpdatedAt = now

		return nil
	}

	c.nextID++
	row := *channel
	row.ID = c.nextID
	row.IsActive = true
	row.CreatedAt = now.Add(time.Duration(c.nextID) * time.Millisecond)
	row.UpdatedAt = row.CreatedAt
	c.rows[channel.ChannelID] = &row

	return nil
}

func (c *Channels) GetByChannelID(_ context.Context, channelID uint64) (*types.TranslationChannel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Calls++
	if c.LookErr != nil {
		return nil, c.LookErr
	}

	row, ok := c.rows[channelID]
	if !ok || !row.IsActive {
		return nil, types.ErrChannelNotFound
	}

	clone := *row

	return &clone, nil
}

func (c *Channels) ListByGuild(_ context.Context, guildID uint64) ([]*types.TranslationChannel, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Calls++
	if c.Err != nil {
		return nil, c.Err
	}

	var result []*types.TranslationChannel

	for _, row := range c.rows {
		if row.GuildID == guildID && row.IsActive {
			clone := *row
			result = append(result, &clone)
		}
	}

	slices.SortFunc(result, func(a, b *types.TranslationChannel) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return result, nil
}

func (c *Channels) Deactivate(_ context.Context, guildID, channelID uint64) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Calls++
	if c.Err != nil {
		return false, c.Err
	}

	row, ok := c.rows[channelID]
	if !ok || !row.IsActive || row.GuildID != guildID {
		return false, nil
	}

	row.IsActive = false

	return true, nil
}

func (c *Channels) CountActiveByGuild(ctx context.Context, guildID uint64) (int, error) {
	rows, err := c.ListByGuild(ctx, guildID)
	return len(rows), err
}

// Rows returns a copy of every stored row, active or not.
func (c *Channels) Rows() []types.TranslationChannel {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]types.TranslationChannel, 0, len(c.rows))
	for _, row := range c.rows {
		rows = append(rows, *row)
	}

	return rows
}

// History records created rows in memory.
type History struct {
	mu      sync.Mutex
	records []types.TranslationHistory
	Calls   int
	Err     error
}

func (h *History) Create(_ context.Context, record *types.TranslationHistory) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.Calls++
	if h.Err != nil {
		return h.Err
	}

	row := *record
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now()
	}

	h.records = append(h.records, row)

	return nil
}

func (h *History) CountByGuild(ctx context.Context, guildID uint64) (int, error) {
	return h.CountByGuildSince(ctx, guildID, time.Time{})
}

func (h *History) CountByGuildSince(_ context.Context, guildID uint64, since time.Time) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.Calls++
	if h.Err != nil {
		return 0, h.Err
	}

	count := 0

	for _, record := range h.records {
		if record.GuildID == guildID && !record.CreatedAt.Before(since) {
			count++
		}
	}

	return count, nil
}

// Records returns a copy of the stored records.
func (h *History) Records() []types.TranslationHistory {
	h.mu.Lock()
	defer h.mu.Unlock()

	return slices.Clone(h.records)
}

// Add stores a record directly.
func (h *History) Add(record types.TranslationHistory) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, record)
}

// GuildSettings returns default settings for every guild.
type GuildSettings struct {
	TargetLang       string
	AutoTranslateOff bool
	Err              error
}

func (g *GuildSettings) GetOrCreate(_ context.Context, guildID uint64) (*types.GuildSettings, error) {
	if g.Err != nil {
		return nil, g.Err
	}

	settings := types.NewGuildSettings(guildID)
	if g.TargetLang != "" {
		settings.DefaultTargetLang = g.TargetLang
	}

	settings.AutoTranslate = !g.AutoTranslateOff

	return settings, nil
}

// Responder records replies and typing indicators.
type Responder struct {
	mu        sync.Mutex
	replies   []string
	typing    []snowflake.ID
	TypingErr error
}

func (r *Responder) Reply(_ context.Context, _ *interfaces.Message, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.replies = append(r.replies, content)

	return nil
}

func (r *Responder) Typing(_ context.Context, channelID snowflake.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.typing = append(r.typing, channelID)

	return r.TypingErr
}

// Replies returns the replies sent so far.
func (r *Responder) Replies() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.replies)
}

// TypingCount returns how many typing indicators were sent.
func (r *Responder) TypingCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.typing)
}

// Permissions answers every check with Admin.
type Permissions struct {
	Admin bool
	Err   error
	Calls int
}

func (p *Permissions) IsAdmin(context.Context, snowflake.ID, snowflake.ID) (bool, error) {
	p.Calls++
	return p.Admin, p.Err
}

// Provider is a translation provider with a fixed result.
type Provider struct {
	ProviderName string
	Text         string
	Err          error

	mu    sync.Mutex
	calls int
}

func (p *Provider) Translate(context.Context, *translator.Request) (*translator.Response, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.Err != nil {
		return nil, p.Err
	}

	return &translator.Response{TranslatedText: p.Text}, nil
}

func (p *Provider) Name() string { return p.ProviderName }

func (p *Provider) SupportsLanguage(string) bool { return true }

// Calls returns how many times Translate ran.
func (p *Provider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.calls
}
