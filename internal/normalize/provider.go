package normalize

import "strings"

// providerAlias maps a lowercased short code to its canonical display name.
// The table is an ordered slice, not a map: the substring fallback below is
// first-declared-wins, and that ordering is part of the contract.
type providerAlias struct {
	key  string
	name string
}

var providerAliases = []providerAlias{
	{"pragmatic", "Pragmatic Play"},
	{"twist", "Massive Studios"},
	{"hacksaw", "Hacksaw"},
	{"hacksawgaming", "Hacksaw"},
	{"evolutionoss", "NoLimit City"},
	{"relax", "Relax Gaming"},
	{"relaxgaming", "Relax Gaming"},
	{"pg", "PG Soft"},
	{"pgsoft", "PG Soft"},
	{"redtiger", "Red Tiger"},
	{"netent", "NetEnt"},
	{"playngo", "Play'n GO"},
	{"nolimit", "NoLimit City"},
	{"nolimitcity", "NoLimit City"},
	{"push", "Push Gaming"},
	{"pushgaming", "Push Gaming"},
	{"evo", "Evolution"},
	{"evolution", "Evolution"},
	{"blueprint", "Blueprint Gaming"},
	{"thunderkick", "Thunderkick"},
	{"rtg", "Realtime Gaming"},
	{"quickspin", "Quickspin"},
	{"bigtime", "Big Time Gaming"},
	{"bigtimegaming", "Big Time Gaming"},
	{"betsoft", "Betsoft"},
	{"fugaso", "Fugaso"},
	{"gameart", "GameArt"},
	{"habanero", "Habanero"},
	{"isoftbet", "iSoftBet"},
	{"wazdan", "Wazdan"},
	{"tomhorn", "Tom Horn"},
	{"booongo", "Booongo"},
	{"bgaming", "BGaming"},
	{"igtech", "IGTech"},
	{"spinomenal", "Spinomenal"},
	{"ktr", "KA Gaming"},
	{"kagaming", "KA Gaming"},
	{"playson", "Playson"},
	{"evoplay", "Evoplay"},
	{"yggdrasil", "Yggdrasil"},
	{"kalamba", "Kalamba"},
	{"novomatic", "Novomatic"},
	{"platipus", "Platipus"},
	{"reelplay", "ReelPlay"},
	{"trulab", "TruLab"},
	{"elk", "ELK Studios"},
	{"elkstudios", "ELK Studios"},
	{"playtech", "Playtech"},
	{"merkur", "Merkur Gaming"},
	{"amatic", "Amatic"},
}

// ProviderName maps a free-text provider or studio name to its canonical
// display name. Empty input returns the caller's fallback label. Unknown
// names are title-cased token by token.
func ProviderName(raw, fallback string) string {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if lower == "" || lower == "unknown" {
		return fallback
	}

	for _, alias := range providerAliases {
		if alias.key == lower {
			return alias.name
		}
	}

	// Partial match, first declared key wins.
	for _, alias := range providerAliases {
		if strings.Contains(lower, alias.key) {
			return alias.name
		}
	}

	return titleCase(raw)
}

func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
