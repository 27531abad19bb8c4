package roster

import "github.com/pressboxhq/pressbox/internal/domain/team"

// Index flattens per-team rosters into one player-ID-keyed map. Only teams
// present in the given sequence contribute; a team with no roster entry is
// skipped. The reserved free-agent roster is always merged in when present.
// Duplicate player IDs resolve last-write-wins.
func Index(teams []team.Team, rosters map[int64][]Player) Map {
	out := make(Map)
	for _, t := range teams {
		for _, p := range rosters[t.ID] {
			out[p.ID] = p
		}
	}
	for _, p := range rosters[FreeAgentKey] {
		out[p.ID] = p
	}
	return out
}
