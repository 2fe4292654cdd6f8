// Package discord wires the vouch commands to the Discord interaction API:
// slash-command definitions, interaction dispatch, the product selection
// round-trip, and response/embed rendering.
package discord

import "github.com/bwmarrin/discordgo"

// Platform is the narrow slice of the Discord session the handlers need.
// Keeping it small lets tests drive the handlers with a fake.
type Platform interface {
	// Respond sends the initial response to an interaction.
	Respond(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error

	// Followup sends a follow-up message after the initial response.
	Followup(i *discordgo.Interaction, params *discordgo.WebhookParams) error

	// SendEmbed posts an embed to a channel outside any interaction.
	SendEmbed(channelID string, embed *discordgo.MessageEmbed) error

	// FetchUser resolves a user by ID via the API.
	FetchUser(userID string) (*discordgo.User, error)
}

type sessionPlatform struct {
	s *discordgo.Session
}

// NewPlatform adapts a live discordgo session to the Platform interface.
func NewPlatform(s *discordgo.Session) Platform {
	return &sessionPlatform{s: s}
}

func (p *sessionPlatform) Respond(i *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	return p.s.InteractionRespond(i, resp)
}

func (p *sessionPlatform) Followup(i *discordgo.Interaction, params *discordgo.WebhookParams) error {
	_, err := p.s.FollowupMessageCreate(i, true, params)
	return err
}

func (p *sessionPlatform) SendEmbed(channelID string, embed *discordgo.MessageEmbed) error {
	_, err := p.s.ChannelMessageSendEmbed(channelID, embed)
	return err
}

func (p *sessionPlatform) FetchUser(userID string) (*discordgo.User, error) {
	return p.s.User(userID)
}
