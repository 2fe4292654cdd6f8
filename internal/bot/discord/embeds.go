package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/grandx/vouchbot/internal/bot/models"
)

const (
	colorPurple = 0x9b59b6
	colorBlue   = 0x3498db
	colorGold   = 0xf1c40f

	footerText = "GrandX Vouches"

	// maxListedVouches caps how many records the vouches embed renders.
	maxListedVouches = 10
)

// vouchEmbed is the summary record mirrored to the log channel after a
// successful vouch.
func vouchEmbed(id int64, product, feedback string, author *discordgo.User) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📬 Vouch #%d", id),
		Color: colorPurple,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "🎯 Product", Value: fmt.Sprintf("**%s**", product)},
			{Name: "💬 Feedback", Value: fmt.Sprintf("*%s*", feedback)},
			{Name: "🙋 Vouched by", Value: author.Mention()},
		},
		Thumbnail: &discordgo.MessageEmbedThumbnail{URL: author.AvatarURL("")},
		Footer:    &discordgo.MessageEmbedFooter{Text: footerText},
	}
}

// vouchListEmbed renders up to maxListedVouches records for one target,
// oldest first.
func vouchListEmbed(targetName string, records []models.Vouch) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("📋 Vouches for %s", targetName),
		Color:  colorBlue,
		Footer: &discordgo.MessageEmbedFooter{Text: footerText},
	}
	for _, v := range records {
		if len(embed.Fields) == maxListedVouches {
			break
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("📬 Vouch #%d", v.ID),
			Value: fmt.Sprintf("🎯 **%s**\n💬 *%s*\n🙋 By: <@%s>\n📅 %s",
				v.Product, v.Feedback, v.AuthorUserID, v.CreatedAt.Format("2006-01-02")),
		})
	}
	return embed
}

// leaderboardEmbed renders the topvouched result. An empty leaderboard is a
// valid embed with no fields.
func leaderboardEmbed(rows []leaderboardRow) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:  "🏆 Top Vouched Users",
		Color:  colorGold,
		Footer: &discordgo.MessageEmbedFooter{Text: footerText},
	}
	for _, row := range rows {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  row.Name,
			Value: fmt.Sprintf("%d vouches", row.Count),
		})
	}
	return embed
}

type leaderboardRow struct {
	Name  string
	Count int64
}
