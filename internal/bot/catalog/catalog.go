// Package catalog holds the fixed list of vouchable products. The list is
// compiled in and never persisted or mutated at runtime.
package catalog

import "github.com/bwmarrin/discordgo"

// Product is one selectable catalog entry.
type Product struct {
	// Value is the identifier stored in vouch records.
	Value string
	// Label is the text shown in the selection menu.
	Label string
}

var products = []Product{
	{"1337-ch3at5", "1337-ch3at5"},
	{"grandrp-m0n3y", "grandrp-m0n3y"},
	{"grandrp-acc0unt5", "grandrp-acc0unt5"},
	{"grandrp-m0n3y-m3th0d", "grandrp-m0n3y-m3th0d"},
	{"tr1gg3r-b0t", "tr1gg3r-b0t"},
	{"shax-cl3an3r", "shax-cl3an3r"},
	{"custom-discord-bot", "custom-discord-bot"},
	{"custom-ch3at3r", "custom-ch3at3r"},
	{"l3ad3r-scr1pts", "l3ad3r-scr1pts"},
	{"adm1n-scr1pts", "adm1n-scr1pts"},
	{"l3ad3r-or-adm1n-appl1cat1on", "l3ad3r-or-adm1n-appl1cat1on"},
	{"pc-cl3an3r", "pc-cl3an3r"},
	{"custom-ch3at3r-redux", "custom-ch3at3r-redux"},
	{"h0w-to-b4n-evad3", "h0w-to-b4n-evad3"},
	{"premium-b4n-evad3", "premium-b4n-evad3"},
	{"pc-ch3ck-pr0c3dur3", "pc-ch3ck-pr0c3dur3"},
	{"V4LOR4NT-SHOP", "V4LOR4NT-SHOP"},
	{"FreeFire-P4N3LS", "FreeFire-P4N3LS"},
	{"FreeFire-D14MONDS", "FreeFire-D14MONDS"},
	{"FreeFire-ACC0UN7S", "FreeFire-ACC0UN7S"},
	{"FreeFire-TOURN4M3NT", "FreeFire-TOURN4M3NT"},
	{"BGMI-ACC0UN7S", "BGMI-ACC0UN7S"},
	{"BGMI-UC", "BGMI-UC"},
	{"BGMI-TOURN4M3NT", "BGMI-TOURN4M3NT"},
	{"4M4ZON-SHOP", "4M4ZON-SHOP"},
	{"OTHER PRODUCT", "OTHER PRODUCT"},
}

// All returns the catalog in presentation order. The returned slice is
// shared; callers must not modify it.
func All() []Product {
	return products
}

// SelectOptions renders the catalog as mutually exclusive select-menu
// options, preserving order.
func SelectOptions() []discordgo.SelectMenuOption {
	opts := make([]discordgo.SelectMenuOption, 0, len(products))
	for _, p := range products {
		opts = append(opts, discordgo.SelectMenuOption{
			Label: p.Label,
			Value: p.Value,
		})
	}
	return opts
}
