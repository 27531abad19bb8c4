package memory

import (
	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/domain/standings"
	"github.com/pressboxhq/pressbox/internal/domain/team"
)

// Seed data gives the API something to render before the first engine
// snapshot lands. Only the pro leagues carry rows; the college leagues
// stay empty until synced.

func SeedTeams() map[league.League][]team.Team {
	return map[league.League][]team.Team{
		league.ProFootball: {
			{ID: 1, ConferenceID: 100, Conference: "American", Division: "American East", Name: "Rivermen", Abbr: "RIV", City: "Harbor City"},
			{ID: 2, ConferenceID: 100, Conference: "American", Division: "American East", Name: "Mustangs", Abbr: "MUS", City: "Fort Bravado"},
			{ID: 3, ConferenceID: 200, Conference: "National", Division: "National West", Name: "Stags", Abbr: "STG", City: "Redmont"},
			{ID: 4, ConferenceID: 200, Conference: "National", Division: "National West", Name: "Gulls", Abbr: "GUL", City: "Cape Alder"},
		},
		league.ProHockey: {
			{ID: 1, ConferenceID: 300, Conference: "Eastern", Division: "Eastern Atlantic", Name: "Mariners", Abbr: "MAR", City: "Port Vale"},
			{ID: 2, ConferenceID: 400, Conference: "Western", Division: "Western Pacific", Name: "Glaciers", Abbr: "GLA", City: "North Bluff"},
		},
	}
}

func SeedRosters() map[league.League]map[int64][]roster.Player {
	return map[league.League]map[int64][]roster.Player{
		league.ProFootball: {
			1: {
				{ID: 10, TeamID: 1, Position: "QB", FirstName: "Del", LastName: "Marsh"},
				{ID: 11, TeamID: 1, Position: "RB", FirstName: "Abe", LastName: "Koster"},
				{ID: 12, TeamID: 1, Position: "WR", FirstName: "Ty", LastName: "Vann"},
			},
			3: {
				{ID: 20, TeamID: 3, Position: "QB", FirstName: "Roy", LastName: "Canter"},
				{ID: 21, TeamID: 3, Position: "TE", FirstName: "Gus", LastName: "Ehrlich"},
			},
			roster.FreeAgentKey: {
				{ID: 90, Position: "K", FirstName: "Sam", LastName: "Odell"},
			},
		},
		league.ProHockey: {
			1: {
				{ID: 30, TeamID: 1, Position: "C", FirstName: "Niko", LastName: "Harte"},
				{ID: 31, TeamID: 1, Position: "G", FirstName: "Sol", LastName: "Brandt"},
			},
			2: {
				{ID: 40, TeamID: 2, Position: "D", FirstName: "Wes", LastName: "Calder"},
			},
		},
	}
}

func SeedStandings() map[league.League][]standings.Standing {
	return map[league.League][]standings.Standing{
		league.ProFootball: {
			{TeamID: 1, Conference: "American", Division: "American East", Wins: 9, Losses: 2},
			{TeamID: 2, Conference: "American", Division: "American East", Wins: 6, Losses: 5},
			{TeamID: 3, Conference: "National", Division: "National West", Wins: 8, Losses: 3},
			{TeamID: 4, Conference: "National", Division: "National West", Wins: 4, Losses: 7},
		},
		league.ProHockey: {
			{TeamID: 1, Conference: "Eastern", Division: "Eastern Atlantic", Wins: 12, Losses: 5, OTLosses: 2, Points: 26},
			{TeamID: 2, Conference: "Western", Division: "Western Pacific", Wins: 10, Losses: 7, OTLosses: 1, Points: 21},
		},
	}
}
