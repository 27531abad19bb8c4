package stats

import "fmt"

// FootballCategory selects which statistical view a football slate renders.
// Eligibility pairs a position set with an activity threshold; both must
// hold for a player to appear in the category's leaderboard.
type FootballCategory string

const (
	CategoryPassing      FootballCategory = "passing"
	CategoryRushing      FootballCategory = "rushing"
	CategoryReceiving    FootballCategory = "receiving"
	CategoryDefense      FootballCategory = "defense"
	CategoryOLine        FootballCategory = "oline"
	CategoryReturn       FootballCategory = "return"
	CategorySpecialTeams FootballCategory = "specialteams"
)

var FootballCategories = []FootballCategory{
	CategoryPassing,
	CategoryRushing,
	CategoryReceiving,
	CategoryDefense,
	CategoryOLine,
	CategoryReturn,
	CategorySpecialTeams,
}

func ParseFootballCategory(raw string) (FootballCategory, error) {
	c := FootballCategory(raw)
	for _, known := range FootballCategories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown football category: %q", raw)
}

var (
	passingPositions   = positionSet("QB", "ATH")
	rushingPositions   = positionSet("RB", "FB", "QB", "ATH")
	receivingPositions = positionSet("RB", "FB", "WR", "TE", "ATH")
	defensePositions   = positionSet("DT", "DE", "OLB", "ILB", "CB", "FS", "SS", "ATH")
	olinePositions     = positionSet("OT", "OG", "C", "ATH")
)

func positionSet(codes ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		set[c] = struct{}{}
	}
	return set
}

// Eligible reports whether a player with the given position code and usage
// counters belongs in the category's slate. Return and special-teams views
// are activity-only; offensive line is position-only.
func (c FootballCategory) Eligible(position string, u FootballUsage) bool {
	switch c {
	case CategoryPassing:
		return inSet(passingPositions, position) && u.PassAttempts > 0
	case CategoryRushing:
		return inSet(rushingPositions, position) && u.RushAttempts > 0
	case CategoryReceiving:
		return inSet(receivingPositions, position) && u.Targets > 0
	case CategoryDefense:
		return inSet(defensePositions, position) && u.DefSnaps > 0
	case CategoryOLine:
		return inSet(olinePositions, position)
	case CategoryReturn:
		return u.KickReturns > 0 || u.PuntReturns > 0
	case CategorySpecialTeams:
		return u.FGAttempts > 0 || u.XPAttempts > 0 || u.Punts > 0
	default:
		return false
	}
}

func inSet(set map[string]struct{}, position string) bool {
	_, ok := set[position]
	return ok
}
