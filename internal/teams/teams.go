package teams

import (
	"errors"
	"strings"
)

// ErrUnknownTeam is returned when free-text input matches no known
// team alias.
var ErrUnknownTeam = errors.New("unknown team")

// Team is one row of the static team table. The table is built once at
// init and never mutated.
type Team struct {
	Abbrev     string   // canonical 3-letter code used by the NHL API
	Place      string   // e.g. "Boston"
	Nickname   string   // e.g. "Bruins"
	Conference string   // "Eastern" or "Western"
	Division   string
	Aliases    []string // extra colloquial names, e.g. "Habs"
}

var allTeams = []Team{
	{Abbrev: "ANA", Place: "Anaheim", Nickname: "Ducks", Conference: "Western", Division: "Pacific"},
	{Abbrev: "BOS", Place: "Boston", Nickname: "Bruins", Conference: "Eastern", Division: "Atlantic", Aliases: []string{"B's"}},
	{Abbrev: "BUF", Place: "Buffalo", Nickname: "Sabres", Conference: "Eastern", Division: "Atlantic"},
	{Abbrev: "CGY", Place: "Calgary", Nickname: "Flames", Conference: "Western", Division: "Pacific"},
	{Abbrev: "CAR", Place: "Carolina", Nickname: "Hurricanes", Conference: "Eastern", Division: "Metropolitan", Aliases: []string{"Canes"}},
	{Abbrev: "CHI", Place: "Chicago", Nickname: "Blackhawks", Conference: "Western", Division: "Central", Aliases: []string{"Hawks"}},
	{Abbrev: "COL", Place: "Colorado", Nickname: "Avalanche", Conference: "Western", Division: "Central", Aliases: []string{"Avs"}},
	{Abbrev: "CBJ", Place: "Columbus", Nickname: "Blue Jackets", Conference: "Eastern", Division: "Metropolitan", Aliases: []string{"Jackets"}},
	{Abbrev: "DAL", Place: "Dallas", Nickname: "Stars", Conference: "Western", Division: "Central"},
	{Abbrev: "DET", Place: "Detroit", Nickname: "Red Wings", Conference: "Eastern", Division: "Atlantic", Aliases: []string{"Wings"}},
	{Abbrev: "EDM", Place: "Edmonton", Nickname: "Oilers", Conference: "Western", Division: "Pacific"},
	{Abbrev: "FLA", Place: "Florida", Nickname: "Panthers", Conference: "Eastern", Division: "Atlantic", Aliases: []string{"Cats"}},
	{Abbrev: "LAK", Place: "Los Angeles", Nickname: "Kings", Conference: "Western", Division: "Pacific", Aliases: []string{"LA"}},
	{Abbrev: "MIN", Place: "Minnesota", Nickname: "Wild", Conference: "Western", Division: "Central"},
	{Abbrev: "MTL", Place: "Montreal", Nickname: "Canadiens", Conference: "Eastern", Division: "Atlantic", Aliases: []string{"Montréal", "Habs"}},
	{Abbrev: "NSH", Place: "Nashville", Nickname: "Predators", Conference: "Western", Division: "Central", Aliases: []string{"Preds"}},
	{Abbrev: "NJD", Place: "New Jersey", Nickname: "Devils", Conference: "Eastern", Division: "Metropolitan", Aliases: []string{"Jersey"}},
	{Abbrev: "NYI", Place: "New York", Nickname: "Islanders", Conference: "Eastern", Division: "Metropolitan", Aliases: []string{"Isles"}},
	{Abbrev: "NYR", Place: "New York", Nickname: "Rangers", Conference: "Eastern", Division: "Metropolitan"},
	{Abbrev: "OTT", Place: "Ottawa", Nickname: "Senators", Conference: "Eastern", Division: "Atlantic", Aliases: []string{"Sens"}},
	{Abbrev: "PHI", Place: "Philadelphia", Nickname: "Flyers", Conference: "Eastern", Division: "Metropolitan", Aliases: []string{"Philly"}},
	{Abbrev: "PIT", Place: "Pittsburgh", Nickname: "Penguins", Conference: "Eastern", Division: "Metropolitan", Aliases: []string{"Pens"}},
	{Abbrev: "SJS", Place: "San Jose", Nickname: "Sharks", Conference: "Western", Division: "Pacific"},
	{Abbrev: "SEA", Place: "Seattle", Nickname: "Kraken", Conference: "Western", Division: "Pacific"},
	{Abbrev: "STL", Place: "St. Louis", Nickname: "Blues", Conference: "Western", Division: "Central", Aliases: []string{"St Louis"}},
	{Abbrev: "TBL", Place: "Tampa Bay", Nickname: "Lightning", Conference: "Eastern", Division: "Atlantic", Aliases: []string{"Tampa", "Bolts"}},
	{Abbrev: "TOR", Place: "Toronto", Nickname: "Maple Leafs", Conference: "Eastern", Division: "Atlantic", Aliases: []string{"Leafs"}},
	{Abbrev: "UTA", Place: "Utah", Nickname: "Mammoth", Conference: "Western", Division: "Central", Aliases: []string{"Utah Hockey Club"}},
	{Abbrev: "VAN", Place: "Vancouver", Nickname: "Canucks", Conference: "Western", Division: "Pacific", Aliases: []string{"Nucks"}},
	{Abbrev: "VGK", Place: "Vegas", Nickname: "Golden Knights", Conference: "Western", Division: "Pacific", Aliases: []string{"Las Vegas", "Knights"}},
	{Abbrev: "WSH", Place: "Washington", Nickname: "Capitals", Conference: "Eastern", Division: "Metropolitan", Aliases: []string{"Caps"}},
	{Abbrev: "WPG", Place: "Winnipeg", Nickname: "Jets", Conference: "Western", Division: "Central"},
}

var aliasMap = buildAliasMap()

func buildAliasMap() map[string]string {
	m := make(map[string]string)
	add := func(key, abbrev string) {
		key = normalize(key)
		if key != "" {
			m[key] = abbrev
		}
	}
	for _, t := range allTeams {
		add(t.Abbrev, t.Abbrev)
		add(t.Place, t.Abbrev)
		add(t.Nickname, t.Abbrev)
		add(t.Place+t.Nickname, t.Abbrev)
		for _, a := range t.Aliases {
			add(a, t.Abbrev)
		}
	}
	// Both New York teams claim the place name; neither gets it.
	delete(m, "newyork")
	return m
}

// normalize lowercases and strips all whitespace. Only lookup keys are
// normalized; table values are already canonical.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

// Resolve maps free-text input (city, nickname, abbreviation, full
// name, any casing or spacing) to the canonical 3-letter abbreviation.
// Unrecognized input is rejected rather than guessed at.
func Resolve(input string) (string, error) {
	if abbrev, ok := aliasMap[normalize(input)]; ok {
		return abbrev, nil
	}
	return "", ErrUnknownTeam
}

// ResolveLoose is the best-effort variant: unrecognized input falls
// back to the uppercased, whitespace-stripped form unvalidated. The
// downstream fetch surfaces the mistake.
func ResolveLoose(input string) string {
	if abbrev, ok := aliasMap[normalize(input)]; ok {
		return abbrev
	}
	return strings.ToUpper(normalize(input))
}

// Lookup returns the full table row for a canonical abbreviation.
func Lookup(abbrev string) (Team, bool) {
	for _, t := range allTeams {
		if t.Abbrev == abbrev {
			return t, true
		}
	}
	return Team{}, false
}

// All returns the full team table.
func All() []Team {
	out := make([]Team, len(allTeams))
	copy(out, allTeams)
	return out
}
