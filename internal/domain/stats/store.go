package stats

import (
	"sync"

	"github.com/pressboxhq/pressbox/internal/domain/league"
)

type cacheKey struct {
	league league.League
	id     int
}

// FamilyStore holds the engine-fed stat collections for one league family.
// It is append-only from the readers' perspective: the fetch path merges
// whole keys in, readers take the slice stored under a key as an immutable
// snapshot. A missing key reads as an empty slate.
type FamilyStore[PG, PS, TG, TS any] struct {
	mu            sync.RWMutex
	playerGames   map[cacheKey][]PG
	playerSeasons map[cacheKey][]PS
	teamGames     map[cacheKey][]TG
	teamSeasons   map[cacheKey][]TS
}

func NewFamilyStore[PG, PS, TG, TS any]() *FamilyStore[PG, PS, TG, TS] {
	return &FamilyStore[PG, PS, TG, TS]{
		playerGames:   make(map[cacheKey][]PG),
		playerSeasons: make(map[cacheKey][]PS),
		teamGames:     make(map[cacheKey][]TG),
		teamSeasons:   make(map[cacheKey][]TS),
	}
}

func (s *FamilyStore[PG, PS, TG, TS]) MergePlayerGames(l league.League, weekKey int, recs []PG) {
	s.mu.Lock()
	s.playerGames[cacheKey{l, weekKey}] = recs
	s.mu.Unlock()
}

func (s *FamilyStore[PG, PS, TG, TS]) MergePlayerSeasons(l league.League, seasonKey int, recs []PS) {
	s.mu.Lock()
	s.playerSeasons[cacheKey{l, seasonKey}] = recs
	s.mu.Unlock()
}

func (s *FamilyStore[PG, PS, TG, TS]) MergeTeamGames(l league.League, weekKey int, recs []TG) {
	s.mu.Lock()
	s.teamGames[cacheKey{l, weekKey}] = recs
	s.mu.Unlock()
}

func (s *FamilyStore[PG, PS, TG, TS]) MergeTeamSeasons(l league.League, seasonKey int, recs []TS) {
	s.mu.Lock()
	s.teamSeasons[cacheKey{l, seasonKey}] = recs
	s.mu.Unlock()
}

// HasPlayerSeason reports whether a season key has been fetched already,
// even if the engine returned no lines for it.
func (s *FamilyStore[PG, PS, TG, TS]) HasPlayerSeason(l league.League, seasonKey int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.playerSeasons[cacheKey{l, seasonKey}]
	return ok
}

// PlayerSources snapshots the by-week and by-season player maps for one
// league in the shape SelectSlate consumes.
func (s *FamilyStore[PG, PS, TG, TS]) PlayerSources(l league.League) (map[int][]PG, map[int][]PS) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byWeek := make(map[int][]PG)
	bySeason := make(map[int][]PS)
	for k, recs := range s.playerGames {
		if k.league == l {
			byWeek[k.id] = recs
		}
	}
	for k, recs := range s.playerSeasons {
		if k.league == l {
			bySeason[k.id] = recs
		}
	}
	return byWeek, bySeason
}

// TeamSources is the team-subject counterpart of PlayerSources.
func (s *FamilyStore[PG, PS, TG, TS]) TeamSources(l league.League) (map[int][]TG, map[int][]TS) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byWeek := make(map[int][]TG)
	bySeason := make(map[int][]TS)
	for k, recs := range s.teamGames {
		if k.league == l {
			byWeek[k.id] = recs
		}
	}
	for k, recs := range s.teamSeasons {
		if k.league == l {
			bySeason[k.id] = recs
		}
	}
	return byWeek, bySeason
}

// Store aggregates the three family stores.
type Store struct {
	Football   *FamilyStore[FootballPlayerGame, FootballPlayerSeason, FootballTeamGame, FootballTeamSeason]
	Hockey     *FamilyStore[HockeyPlayerGame, HockeyPlayerSeason, HockeyTeamGame, HockeyTeamSeason]
	Basketball *FamilyStore[BasketballPlayerGame, BasketballPlayerSeason, BasketballTeamGame, BasketballTeamSeason]
}

func NewStore() *Store {
	return &Store{
		Football:   NewFamilyStore[FootballPlayerGame, FootballPlayerSeason, FootballTeamGame, FootballTeamSeason](),
		Hockey:     NewFamilyStore[HockeyPlayerGame, HockeyPlayerSeason, HockeyTeamGame, HockeyTeamSeason](),
		Basketball: NewFamilyStore[BasketballPlayerGame, BasketballPlayerSeason, BasketballTeamGame, BasketballTeamSeason](),
	}
}
