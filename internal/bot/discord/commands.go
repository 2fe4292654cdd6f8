package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Commands returns the slash-command set the bot registers on ready.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "vouch",
			Description: "Vouch for a user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to vouch for",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "feedback",
					Description: "Your feedback message",
					Required:    true,
				},
			},
		},
		{
			Name:        "vouches",
			Description: "See how many vouches a user has",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to check",
					Required:    true,
				},
			},
		},
		{
			Name:        "unvouch",
			Description: "Remove a user's vouches (admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to unvouch",
					Required:    true,
				},
			},
		},
		{
			Name:        "topvouched",
			Description: "See the most vouched users",
		},
	}
}

// RegisterCommands overwrites the application's global command set with
// Commands. Called once per connection, from the ready handler.
func RegisterCommands(s *discordgo.Session) error {
	if _, err := s.ApplicationCommandBulkOverwrite(s.State.User.ID, "", Commands()); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}
	return nil
}
