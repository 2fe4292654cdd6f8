package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/grandx/vouchbot/internal/bot/catalog"
	"github.com/grandx/vouchbot/internal/bot/selection"
	"github.com/grandx/vouchbot/internal/bot/vouches"
	"github.com/grandx/vouchbot/internal/common"
	"github.com/grandx/vouchbot/internal/logging"
)

// DefaultSelectionTimeout is how long the product menu stays open before the
// vouch is abandoned.
const DefaultSelectionTimeout = 60 * time.Second

const genericFailureMsg = "⚠️ Something went wrong. Please try again later."

// Handler dispatches interactions to the four vouch commands. All
// dependencies are injected; there is no package-level state.
type Handler struct {
	logger       logging.Logger
	service      *vouches.Service
	sessions     *selection.Registry
	logChannelID string
	timeout      time.Duration
}

func NewHandler(logger logging.Logger, service *vouches.Service, sessions *selection.Registry, logChannelID string, timeout time.Duration) *Handler {
	return &Handler{
		logger:       logger.With("module", "discord_handler"),
		service:      service,
		sessions:     sessions,
		logChannelID: logChannelID,
		timeout:      timeout,
	}
}

// HandleInteraction routes one interaction. discordgo invokes this on its own
// goroutine per event, so command handlers may block on the selection session
// without stalling other invocations.
func (h *Handler) HandleInteraction(ctx context.Context, p Platform, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		switch data.Name {
		case "vouch":
			h.handleVouch(ctx, p, i)
		case "vouches":
			h.handleVouches(ctx, p, i)
		case "unvouch":
			h.handleUnvouch(ctx, p, i)
		case "topvouched":
			h.handleTopvouched(ctx, p, i)
		default:
			h.logger.Warn(ctx, "unknown command", "name", data.Name)
		}
	case discordgo.InteractionMessageComponent:
		h.handleComponent(ctx, p, i)
	}
}

func (h *Handler) handleVouch(ctx context.Context, p Platform, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	target := userOption(data)
	feedback := stringOption(data, "feedback")
	author := invokingUser(i)
	if target == nil || author == nil {
		h.respondEphemeral(ctx, p, i, genericFailureMsg)
		return
	}

	if target.ID == author.ID {
		h.respondEphemeral(ctx, p, i, "❌ You can't vouch for yourself!")
		return
	}

	sess := h.sessions.Open(author.ID)
	defer h.sessions.Close(sess)

	err := p.Respond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Please select a product to vouch for:",
			Flags:   discordgo.MessageFlagsEphemeral,
			Components: []discordgo.MessageComponent{
				discordgo.ActionsRow{
					Components: []discordgo.MessageComponent{
						discordgo.SelectMenu{
							MenuType:    discordgo.StringSelectMenu,
							CustomID:    sess.CustomID(),
							Placeholder: "Select your Product",
							Options:     catalog.SelectOptions(),
						},
					},
				},
			},
		},
	})
	if err != nil {
		h.logger.Error(ctx, "selection prompt failed", "error", err, "user_id", author.ID)
		return
	}

	res := sess.Wait(ctx, h.timeout)
	if res.Outcome != selection.Chosen {
		reason := "selection cancelled"
		if res.Outcome == selection.TimedOut {
			reason = common.ErrSelectionTimedOut.Error()
		}
		h.logger.Debug(ctx, "vouch abandoned", "reason", reason, "user_id", author.ID)
		h.followupEphemeral(ctx, p, i, "⚠️ You didn't select a product in time. Please try again.")
		return
	}

	id, err := h.service.Create(ctx, target.ID, author.ID, res.Value, feedback)
	if err != nil {
		h.logger.Error(ctx, "vouch create failed", "error", err, "target_id", target.ID, "author_id", author.ID)
		h.followupEphemeral(ctx, p, i, genericFailureMsg)
		return
	}

	// Best effort: a broken log channel must not fail the vouch.
	if err := p.SendEmbed(h.logChannelID, vouchEmbed(id, res.Value, feedback, author)); err != nil {
		h.logger.Warn(ctx, "vouch mirror failed",
			"error", fmt.Errorf("%w: %w", common.ErrLogMirror, err), "channel_id", h.logChannelID)
	}

	h.followupEphemeral(ctx, p, i, "✅ Your vouch has been submitted successfully!")
}

// handleComponent routes a select-menu choice back to its waiting session.
func (h *Handler) handleComponent(ctx context.Context, p Platform, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()

	// Acknowledge regardless: stale menus and foreign clicks are silently
	// dropped, matching the single-use session contract.
	if err := p.Respond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		h.logger.Warn(ctx, "component ack failed", "error", err)
	}

	sess, ok := h.sessions.Lookup(data.CustomID)
	if !ok {
		h.logger.Debug(ctx, "component for unknown session", "custom_id", data.CustomID)
		return
	}

	user := invokingUser(i)
	if user == nil || user.ID != sess.UserID() {
		return
	}
	if len(data.Values) != 1 {
		return
	}

	if !sess.Resolve(data.Values[0]) {
		h.logger.Debug(ctx, "selection arrived after session closed", "custom_id", data.CustomID)
	}
}

func (h *Handler) handleVouches(ctx context.Context, p Platform, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()
	target := userOption(data)
	if target == nil {
		h.respondEphemeral(ctx, p, i, genericFailureMsg)
		return
	}

	records, err := h.service.List(ctx, target.ID)
	if err != nil {
		h.logger.Error(ctx, "vouch list failed", "error", err, "target_id", target.ID)
		h.respondEphemeral(ctx, p, i, genericFailureMsg)
		return
	}

	if len(records) == 0 {
		h.respondPublic(ctx, p, i, fmt.Sprintf("%s has no vouches yet.", target.Mention()))
		return
	}

	h.respondEmbed(ctx, p, i, vouchListEmbed(displayName(target), records))
}

func (h *Handler) handleUnvouch(ctx context.Context, p Platform, i *discordgo.InteractionCreate) {
	if !isAdmin(i) {
		h.logger.Debug(ctx, "unvouch denied", "error", common.ErrPermissionDenied)
		h.respondEphemeral(ctx, p, i, "❌ Only admins can use this command.")
		return
	}

	data := i.ApplicationCommandData()
	target := userOption(data)
	if target == nil {
		h.respondEphemeral(ctx, p, i, genericFailureMsg)
		return
	}

	n, err := h.service.RemoveAll(ctx, target.ID)
	if err != nil {
		h.logger.Error(ctx, "unvouch failed", "error", err, "target_id", target.ID)
		h.respondEphemeral(ctx, p, i, genericFailureMsg)
		return
	}

	h.logger.Info(ctx, "vouches removed", "target_id", target.ID, "count", n)
	h.respondPublic(ctx, p, i, fmt.Sprintf("🗑️ All vouches for %s have been removed.", target.Mention()))
}

func (h *Handler) handleTopvouched(ctx context.Context, p Platform, i *discordgo.InteractionCreate) {
	entries, err := h.service.Top(ctx, vouches.DefaultTopSize)
	if err != nil {
		h.logger.Error(ctx, "leaderboard query failed", "error", err)
		h.respondEphemeral(ctx, p, i, genericFailureMsg)
		return
	}

	rows := make([]leaderboardRow, 0, len(entries))
	for _, e := range entries {
		name := fmt.Sprintf("Unknown User (%s)", e.TargetUserID)
		if u, err := p.FetchUser(e.TargetUserID); err != nil {
			// non-fatal: render the placeholder instead
			h.logger.Warn(ctx, "leaderboard name lookup failed",
				"error", fmt.Errorf("%w: %w", common.ErrUserResolution, err), "user_id", e.TargetUserID)
		} else {
			name = displayName(u)
		}
		rows = append(rows, leaderboardRow{Name: name, Count: e.Count})
	}

	h.respondEmbed(ctx, p, i, leaderboardEmbed(rows))
}

func (h *Handler) respondEphemeral(ctx context.Context, p Platform, i *discordgo.InteractionCreate, content string) {
	err := p.Respond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content, Flags: discordgo.MessageFlagsEphemeral},
	})
	if err != nil {
		h.logger.Error(ctx, "interaction response failed", "error", err)
	}
}

func (h *Handler) respondPublic(ctx context.Context, p Platform, i *discordgo.InteractionCreate, content string) {
	err := p.Respond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		h.logger.Error(ctx, "interaction response failed", "error", err)
	}
}

func (h *Handler) respondEmbed(ctx context.Context, p Platform, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	err := p.Respond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	})
	if err != nil {
		h.logger.Error(ctx, "interaction response failed", "error", err)
	}
}

func (h *Handler) followupEphemeral(ctx context.Context, p Platform, i *discordgo.InteractionCreate, content string) {
	err := p.Followup(i.Interaction, &discordgo.WebhookParams{
		Content: content,
		Flags:   discordgo.MessageFlagsEphemeral,
	})
	if err != nil {
		h.logger.Error(ctx, "interaction followup failed", "error", err)
	}
}

// invokingUser returns the user behind the interaction: the guild member in
// servers, the bare user in DMs.
func invokingUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil {
		return i.Member.User
	}
	return i.User
}

// isAdmin reports whether the invoking member holds the administrator
// permission in the hosting guild. DMs never qualify.
func isAdmin(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// userOption extracts the "user" option, preferring the resolved user object
// (which carries the username) over the bare ID.
func userOption(data discordgo.ApplicationCommandInteractionData) *discordgo.User {
	for _, opt := range data.Options {
		if opt.Name != "user" || opt.Type != discordgo.ApplicationCommandOptionUser {
			continue
		}
		u := opt.UserValue(nil)
		if data.Resolved != nil {
			if ru, ok := data.Resolved.Users[u.ID]; ok {
				return ru
			}
		}
		return u
	}
	return nil
}

func stringOption(data discordgo.ApplicationCommandInteractionData, name string) string {
	for _, opt := range data.Options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}

func displayName(u *discordgo.User) string {
	if u.Username != "" {
		return u.Username
	}
	return u.ID
}
