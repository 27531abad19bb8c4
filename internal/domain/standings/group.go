package standings

import "github.com/pressboxhq/pressbox/internal/domain/league"

// Hand-specified group priority per league. Groups absent from the data are
// simply omitted from output; group names the lists do not know are appended
// after them in first-seen order so no standing is ever dropped.

var conferenceOrder = map[league.League][]string{
	league.CollegeFootball:   {"Atlantic", "Midlands", "Lakes", "Gulf", "Frontier", "Pacific", "Independents"},
	league.ProFootball:       {"American", "National"},
	league.CollegeHockey:     {"Northeast", "Great Lakes", "Mountain", "Coastal"},
	league.ProHockey:         {"Eastern", "Western"},
	league.CollegeBasketball: {"Atlantic", "Midlands", "Lakes", "Gulf", "Frontier", "Pacific", "Independents"},
	league.ProBasketball:     {overallGroup},
}

var divisionOrder = map[league.League][]string{
	league.ProFootball: {
		"American East", "American North", "American South", "American West",
		"National East", "National North", "National South", "National West",
	},
	league.ProHockey: {
		"Eastern Atlantic", "Eastern Metro",
		"Western Central", "Western Pacific",
	},
	league.ProBasketball: {overallGroup},
}

// GroupOrder returns the priority list for a league and mode. College
// leagues have no division layer; they fall back to conference order.
func GroupOrder(l league.League, mode CategoryMode) []string {
	if mode == ModeOverall {
		return []string{overallGroup}
	}
	if mode == ModeDivision {
		if order, ok := divisionOrder[l]; ok {
			return order
		}
	}
	return conferenceOrder[l]
}

// Group partitions standings by group name and assigns 1-based ranks by
// position within each group, preserving input order (the engine pre-sorts).
// The returned name sequence follows the priority order, with unknown names
// appended in first-seen order and absent groups omitted.
func Group(items []Standing, order []string, mode CategoryMode) (map[string][]Standing, []string) {
	groups := make(map[string][]Standing)
	seen := make([]string, 0, len(order))
	for _, s := range items {
		name := GroupName(s, mode)
		if _, ok := groups[name]; !ok {
			seen = append(seen, name)
		}
		s.Rank = len(groups[name]) + 1
		groups[name] = append(groups[name], s)
	}

	names := make([]string, 0, len(groups))
	for _, name := range order {
		if _, ok := groups[name]; ok {
			names = append(names, name)
		}
	}
	known := make(map[string]bool, len(order))
	for _, name := range order {
		known[name] = true
	}
	for _, name := range seen {
		if !known[name] {
			names = append(names, name)
		}
	}

	return groups, names
}
