package stats

import (
	"strconv"

	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/domain/team"
)

// TierFilter is the college-league program-tier selector. Pro leagues and
// the weekly hockey/basketball views never apply one.
type TierFilter string

const (
	TierAll    TierFilter = ""
	TierTop    TierFilter = "top"
	TierSecond TierFilter = "second"
)

// Filters narrows a slate by team and conference membership. Empty sets
// pass everything; the filter is inclusion-restrictive, so adding IDs to a
// non-empty set can only grow the passing set and introducing the first ID
// can only shrink it.
type Filters struct {
	TeamIDs       map[string]struct{}
	ConferenceIDs map[string]struct{}
	Tier          TierFilter
}

// NewFilters builds membership sets from raw selection values.
func NewFilters(teamIDs, conferenceIDs []string, tier TierFilter) Filters {
	return Filters{
		TeamIDs:       toSet(teamIDs),
		ConferenceIDs: toSet(conferenceIDs),
		Tier:          tier,
	}
}

func toSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// PlayerResolver extracts the record's foreign keys. The engine names the
// player key differently per sport (PlayerID vs SkaterID), so each record
// type binds its own resolver once.
type PlayerResolver[R any] struct {
	TeamID   func(R) int64
	PlayerID func(R) int64
}

// FilterPlayers applies the stages of the player-subject filter to each
// record, short-circuiting on the first failure: team membership, conference
// membership, player resolution, role eligibility, program tier. Records
// whose player cannot be resolved are dropped; records whose team cannot be
// resolved count as conference "" and fail any non-empty conference set.
func FilterPlayers[R any](recs []R, f Filters, teams team.Map, players roster.Map, resolve PlayerResolver[R], eligible func(R, roster.Player) bool) []R {
	out := make([]R, 0, len(recs))
	for _, r := range recs {
		teamID := resolve.TeamID(r)
		if !passesTeamSet(f.TeamIDs, teamID) {
			continue
		}
		if !passesConferenceSet(f.ConferenceIDs, teams, teamID) {
			continue
		}
		p, ok := players[resolve.PlayerID(r)]
		if !ok {
			continue
		}
		if eligible != nil && !eligible(r, p) {
			continue
		}
		if !passesTier(f.Tier, teams, teamID) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterTeams is the team-subject variant: same team/conference/tier stages,
// with unresolvable teams dropped instead of a player lookup.
func FilterTeams[R any](recs []R, f Filters, teams team.Map, teamIDOf func(R) int64) []R {
	out := make([]R, 0, len(recs))
	for _, r := range recs {
		teamID := teamIDOf(r)
		if !passesTeamSet(f.TeamIDs, teamID) {
			continue
		}
		if !passesConferenceSet(f.ConferenceIDs, teams, teamID) {
			continue
		}
		if _, ok := teams[teamID]; !ok {
			continue
		}
		if !passesTier(f.Tier, teams, teamID) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func passesTeamSet(set map[string]struct{}, teamID int64) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[strconv.FormatInt(teamID, 10)]
	return ok
}

func passesConferenceSet(set map[string]struct{}, teams team.Map, teamID int64) bool {
	if len(set) == 0 {
		return true
	}

	conference := ""
	if t, ok := teams[teamID]; ok {
		conference = strconv.FormatInt(t.ConferenceID, 10)
	}
	_, ok := set[conference]
	return ok
}

func passesTier(tier TierFilter, teams team.Map, teamID int64) bool {
	if tier == TierAll {
		return true
	}

	t, ok := teams[teamID]
	if !ok {
		return false
	}
	if tier == TierSecond {
		return t.SecondTier
	}
	return !t.SecondTier
}
