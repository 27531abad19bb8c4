package httpapi

import (
	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/roster"
	"github.com/pressboxhq/pressbox/internal/domain/schedule"
	"github.com/pressboxhq/pressbox/internal/domain/team"
	"github.com/pressboxhq/pressbox/internal/usecase"
)

type leagueDTO struct {
	ID             string `json:"id"`
	Family         string `json:"family"`
	WeeksPerSeason int    `json:"weeks_per_season"`
	College        bool   `json:"college"`
}

func leagueToDTO(l league.League) leagueDTO {
	return leagueDTO{
		ID:             string(l),
		Family:         string(l.Family()),
		WeeksPerSeason: l.WeeksPerSeason(),
		College:        l.IsCollege(),
	}
}

type timestampDTO struct {
	Season int `json:"season"`
	Week   int `json:"week"`
}

type optionDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type optionListDTO struct {
	Seasons []optionDTO `json:"seasons"`
	Weeks   []optionDTO `json:"weeks"`
}

func optionsToDTO(options []league.Option) []optionDTO {
	out := make([]optionDTO, 0, len(options))
	for _, o := range options {
		out = append(out, optionDTO{Label: o.Label, Value: o.Value})
	}
	return out
}

type teamDTO struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbr         string `json:"abbr"`
	City         string `json:"city"`
	ConferenceID int64  `json:"conference_id"`
	Conference   string `json:"conference"`
	Division     string `json:"division,omitempty"`
	SecondTier   bool   `json:"second_tier,omitempty"`
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:           t.ID,
		Name:         t.Name,
		Abbr:         t.Abbr,
		City:         t.City,
		ConferenceID: t.ConferenceID,
		Conference:   t.Conference,
		Division:     t.Division,
		SecondTier:   t.SecondTier,
	}
}

type playerDTO struct {
	ID        int64  `json:"id"`
	TeamID    int64  `json:"team_id"`
	Position  string `json:"position"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func playerToDTO(p roster.Player) playerDTO {
	return playerDTO{
		ID:        p.ID,
		TeamID:    p.TeamID,
		Position:  p.Position,
		FirstName: p.FirstName,
		LastName:  p.LastName,
	}
}

type standingDTO struct {
	Rank     int   `json:"rank"`
	TeamID   int64 `json:"team_id"`
	Wins     int   `json:"wins"`
	Losses   int   `json:"losses"`
	Ties     int   `json:"ties,omitempty"`
	OTLosses int   `json:"ot_losses,omitempty"`
	Points   int   `json:"points,omitempty"`
}

type standingsGroupDTO struct {
	Name  string        `json:"name"`
	Items []standingDTO `json:"items"`
}

func standingsGroupToDTO(group usecase.StandingsGroup) standingsGroupDTO {
	items := make([]standingDTO, 0, len(group.Items))
	for _, s := range group.Items {
		items = append(items, standingDTO{
			Rank:     s.Rank,
			TeamID:   s.TeamID,
			Wins:     s.Wins,
			Losses:   s.Losses,
			Ties:     s.Ties,
			OTLosses: s.OTLosses,
			Points:   s.Points,
		})
	}
	return standingsGroupDTO{Name: group.Name, Items: items}
}

type gameDTO struct {
	ID         int64 `json:"id"`
	WeekKey    int   `json:"week_key"`
	GameDay    int   `json:"game_day"`
	Timeslot   int   `json:"timeslot"`
	HomeTeamID int64 `json:"home_team_id"`
	AwayTeamID int64 `json:"away_team_id"`
	HomeScore  int   `json:"home_score"`
	AwayScore  int   `json:"away_score"`
	Played     bool  `json:"played"`
}

func gameToDTO(g schedule.Game) gameDTO {
	return gameDTO{
		ID:         g.ID,
		WeekKey:    g.WeekKey,
		GameDay:    g.GameDay,
		Timeslot:   g.Timeslot,
		HomeTeamID: g.HomeTeamID,
		AwayTeamID: g.AwayTeamID,
		HomeScore:  g.HomeScore,
		AwayScore:  g.AwayScore,
		Played:     g.Played,
	}
}

// Leaderboard slates go over the wire as one envelope per family with only
// the selected subject/view slice populated.

type footballSlateDTO struct {
	PlayerGames   []footballPlayerGameDTO   `json:"player_games,omitempty"`
	PlayerSeasons []footballPlayerSeasonDTO `json:"player_seasons,omitempty"`
	TeamGames     []footballTeamGameDTO     `json:"team_games,omitempty"`
	TeamSeasons   []footballTeamSeasonDTO   `json:"team_seasons,omitempty"`
}

type footballPlayerGameDTO struct {
	PlayerID            int64 `json:"player_id"`
	TeamID              int64 `json:"team_id"`
	WeekKey             int   `json:"week_key"`
	GameDay             int   `json:"game_day"`
	PassAttempts        int   `json:"pass_attempts"`
	PassCompletions     int   `json:"pass_completions"`
	PassYards           int   `json:"pass_yards"`
	PassTDs             int   `json:"pass_tds"`
	InterceptionsThrown int   `json:"interceptions_thrown"`
	RushAttempts        int   `json:"rush_attempts"`
	RushYards           int   `json:"rush_yards"`
	RushTDs             int   `json:"rush_tds"`
	Targets             int   `json:"targets"`
	Receptions          int   `json:"receptions"`
	RecYards            int   `json:"rec_yards"`
	RecTDs              int   `json:"rec_tds"`
	DefSnaps            int   `json:"def_snaps"`
	Tackles             int   `json:"tackles"`
	Sacks               int   `json:"sacks"`
	DefInterceptions    int   `json:"def_interceptions"`
	KickReturns         int   `json:"kick_returns"`
	KickReturnYards     int   `json:"kick_return_yards"`
	PuntReturns         int   `json:"punt_returns"`
	PuntReturnYards     int   `json:"punt_return_yards"`
	FGMade              int   `json:"fg_made"`
	FGAttempts          int   `json:"fg_attempts"`
	XPMade              int   `json:"xp_made"`
	XPAttempts          int   `json:"xp_attempts"`
	Punts               int   `json:"punts"`
	PuntYards           int   `json:"punt_yards"`
}

type footballPlayerSeasonDTO struct {
	PlayerID            int64 `json:"player_id"`
	TeamID              int64 `json:"team_id"`
	SeasonKey           int   `json:"season_key"`
	GamesPlayed         int   `json:"games_played"`
	PassAttempts        int   `json:"pass_attempts"`
	PassCompletions     int   `json:"pass_completions"`
	PassYards           int   `json:"pass_yards"`
	PassTDs             int   `json:"pass_tds"`
	InterceptionsThrown int   `json:"interceptions_thrown"`
	RushAttempts        int   `json:"rush_attempts"`
	RushYards           int   `json:"rush_yards"`
	RushTDs             int   `json:"rush_tds"`
	Targets             int   `json:"targets"`
	Receptions          int   `json:"receptions"`
	RecYards            int   `json:"rec_yards"`
	RecTDs              int   `json:"rec_tds"`
	DefSnaps            int   `json:"def_snaps"`
	Tackles             int   `json:"tackles"`
	Sacks               int   `json:"sacks"`
	DefInterceptions    int   `json:"def_interceptions"`
	KickReturns         int   `json:"kick_returns"`
	KickReturnYards     int   `json:"kick_return_yards"`
	PuntReturns         int   `json:"punt_returns"`
	PuntReturnYards     int   `json:"punt_return_yards"`
	FGMade              int   `json:"fg_made"`
	FGAttempts          int   `json:"fg_attempts"`
	XPMade              int   `json:"xp_made"`
	XPAttempts          int   `json:"xp_attempts"`
	Punts               int   `json:"punts"`
	PuntYards           int   `json:"punt_yards"`
}

type footballTeamGameDTO struct {
	TeamID        int64 `json:"team_id"`
	WeekKey       int   `json:"week_key"`
	GameDay       int   `json:"game_day"`
	PointsFor     int   `json:"points_for"`
	PointsAgainst int   `json:"points_against"`
	TotalYards    int   `json:"total_yards"`
	PassYards     int   `json:"pass_yards"`
	RushYards     int   `json:"rush_yards"`
	Turnovers     int   `json:"turnovers"`
}

type footballTeamSeasonDTO struct {
	TeamID        int64 `json:"team_id"`
	SeasonKey     int   `json:"season_key"`
	GamesPlayed   int   `json:"games_played"`
	PointsFor     int   `json:"points_for"`
	PointsAgainst int   `json:"points_against"`
	TotalYards    int   `json:"total_yards"`
	PassYards     int   `json:"pass_yards"`
	RushYards     int   `json:"rush_yards"`
	Turnovers     int   `json:"turnovers"`
}

func footballSlateToDTO(slate usecase.FootballSlate) footballSlateDTO {
	out := footballSlateDTO{}
	for _, r := range slate.PlayerGames {
		out.PlayerGames = append(out.PlayerGames, footballPlayerGameDTO{
			PlayerID:            r.PlayerID,
			TeamID:              r.TeamID,
			WeekKey:             r.WeekKey,
			GameDay:             r.GameDay,
			PassAttempts:        r.PassAttempts,
			PassCompletions:     r.PassCompletions,
			PassYards:           r.PassYards,
			PassTDs:             r.PassTDs,
			InterceptionsThrown: r.InterceptionsThrown,
			RushAttempts:        r.RushAttempts,
			RushYards:           r.RushYards,
			RushTDs:             r.RushTDs,
			Targets:             r.Targets,
			Receptions:          r.Receptions,
			RecYards:            r.RecYards,
			RecTDs:              r.RecTDs,
			DefSnaps:            r.DefSnaps,
			Tackles:             r.Tackles,
			Sacks:               r.Sacks,
			DefInterceptions:    r.DefInterceptions,
			KickReturns:         r.KickReturns,
			KickReturnYards:     r.KickReturnYards,
			PuntReturns:         r.PuntReturns,
			PuntReturnYards:     r.PuntReturnYards,
			FGMade:              r.FGMade,
			FGAttempts:          r.FGAttempts,
			XPMade:              r.XPMade,
			XPAttempts:          r.XPAttempts,
			Punts:               r.Punts,
			PuntYards:           r.PuntYards,
		})
	}
	for _, r := range slate.PlayerSeasons {
		out.PlayerSeasons = append(out.PlayerSeasons, footballPlayerSeasonDTO{
			PlayerID:            r.PlayerID,
			TeamID:              r.TeamID,
			SeasonKey:           r.SeasonKey,
			GamesPlayed:         r.GamesPlayed,
			PassAttempts:        r.PassAttempts,
			PassCompletions:     r.PassCompletions,
			PassYards:           r.PassYards,
			PassTDs:             r.PassTDs,
			InterceptionsThrown: r.InterceptionsThrown,
			RushAttempts:        r.RushAttempts,
			RushYards:           r.RushYards,
			RushTDs:             r.RushTDs,
			Targets:             r.Targets,
			Receptions:          r.Receptions,
			RecYards:            r.RecYards,
			RecTDs:              r.RecTDs,
			DefSnaps:            r.DefSnaps,
			Tackles:             r.Tackles,
			Sacks:               r.Sacks,
			DefInterceptions:    r.DefInterceptions,
			KickReturns:         r.KickReturns,
			KickReturnYards:     r.KickReturnYards,
			PuntReturns:         r.PuntReturns,
			PuntReturnYards:     r.PuntReturnYards,
			FGMade:              r.FGMade,
			FGAttempts:          r.FGAttempts,
			XPMade:              r.XPMade,
			XPAttempts:          r.XPAttempts,
			Punts:               r.Punts,
			PuntYards:           r.PuntYards,
		})
	}
	for _, r := range slate.TeamGames {
		out.TeamGames = append(out.TeamGames, footballTeamGameDTO{
			TeamID:        r.TeamID,
			WeekKey:       r.WeekKey,
			GameDay:       r.GameDay,
			PointsFor:     r.PointsFor,
			PointsAgainst: r.PointsAgainst,
			TotalYards:    r.TotalYards,
			PassYards:     r.PassYards,
			RushYards:     r.RushYards,
			Turnovers:     r.Turnovers,
		})
	}
	for _, r := range slate.TeamSeasons {
		out.TeamSeasons = append(out.TeamSeasons, footballTeamSeasonDTO{
			TeamID:        r.TeamID,
			SeasonKey:     r.SeasonKey,
			GamesPlayed:   r.GamesPlayed,
			PointsFor:     r.PointsFor,
			PointsAgainst: r.PointsAgainst,
			TotalYards:    r.TotalYards,
			PassYards:     r.PassYards,
			RushYards:     r.RushYards,
			Turnovers:     r.Turnovers,
		})
	}
	return out
}

type hockeySlateDTO struct {
	PlayerGames   []hockeyPlayerGameDTO   `json:"player_games,omitempty"`
	PlayerSeasons []hockeyPlayerSeasonDTO `json:"player_seasons,omitempty"`
	TeamGames     []hockeyTeamGameDTO     `json:"team_games,omitempty"`
	TeamSeasons   []hockeyTeamSeasonDTO   `json:"team_seasons,omitempty"`
}

type hockeyPlayerGameDTO struct {
	SkaterID     int64 `json:"skater_id"`
	TeamID       int64 `json:"team_id"`
	WeekKey      int   `json:"week_key"`
	GameDay      int   `json:"game_day"`
	Goals        int   `json:"goals"`
	Assists      int   `json:"assists"`
	Shots        int   `json:"shots"`
	PIM          int   `json:"pim"`
	PlusMinus    int   `json:"plus_minus"`
	Saves        int   `json:"saves"`
	ShotsAgainst int   `json:"shots_against"`
	GoalsAgainst int   `json:"goals_against"`
	Shutouts     int   `json:"shutouts"`
}

type hockeyPlayerSeasonDTO struct {
	SkaterID     int64 `json:"skater_id"`
	TeamID       int64 `json:"team_id"`
	SeasonKey    int   `json:"season_key"`
	GamesPlayed  int   `json:"games_played"`
	Goals        int   `json:"goals"`
	Assists      int   `json:"assists"`
	Shots        int   `json:"shots"`
	PIM          int   `json:"pim"`
	PlusMinus    int   `json:"plus_minus"`
	Saves        int   `json:"saves"`
	ShotsAgainst int   `json:"shots_against"`
	GoalsAgainst int   `json:"goals_against"`
	Shutouts     int   `json:"shutouts"`
}

type hockeyTeamGameDTO struct {
	TeamID         int64 `json:"team_id"`
	WeekKey        int   `json:"week_key"`
	GameDay        int   `json:"game_day"`
	GoalsFor       int   `json:"goals_for"`
	GoalsAgainst   int   `json:"goals_against"`
	Shots          int   `json:"shots"`
	PIM            int   `json:"pim"`
	PowerPlays     int   `json:"power_plays"`
	PowerPlayGoals int   `json:"power_play_goals"`
}

type hockeyTeamSeasonDTO struct {
	TeamID         int64 `json:"team_id"`
	SeasonKey      int   `json:"season_key"`
	GamesPlayed    int   `json:"games_played"`
	GoalsFor       int   `json:"goals_for"`
	GoalsAgainst   int   `json:"goals_against"`
	Shots          int   `json:"shots"`
	PIM            int   `json:"pim"`
	PowerPlays     int   `json:"power_plays"`
	PowerPlayGoals int   `json:"power_play_goals"`
}

func hockeySlateToDTO(slate usecase.HockeySlate) hockeySlateDTO {
	out := hockeySlateDTO{}
	for _, r := range slate.PlayerGames {
		out.PlayerGames = append(out.PlayerGames, hockeyPlayerGameDTO{
			SkaterID:     r.SkaterID,
			TeamID:       r.TeamID,
			WeekKey:      r.WeekKey,
			GameDay:      r.GameDay,
			Goals:        r.Goals,
			Assists:      r.Assists,
			Shots:        r.Shots,
			PIM:          r.PIM,
			PlusMinus:    r.PlusMinus,
			Saves:        r.Saves,
			ShotsAgainst: r.ShotsAgainst,
			GoalsAgainst: r.GoalsAgainst,
			Shutouts:     r.Shutouts,
		})
	}
	for _, r := range slate.PlayerSeasons {
		out.PlayerSeasons = append(out.PlayerSeasons, hockeyPlayerSeasonDTO{
			SkaterID:     r.SkaterID,
			TeamID:       r.TeamID,
			SeasonKey:    r.SeasonKey,
			GamesPlayed:  r.GamesPlayed,
			Goals:        r.Goals,
			Assists:      r.Assists,
			Shots:        r.Shots,
			PIM:          r.PIM,
			PlusMinus:    r.PlusMinus,
			Saves:        r.Saves,
			ShotsAgainst: r.ShotsAgainst,
			GoalsAgainst: r.GoalsAgainst,
			Shutouts:     r.Shutouts,
		})
	}
	for _, r := range slate.TeamGames {
		out.TeamGames = append(out.TeamGames, hockeyTeamGameDTO{
			TeamID:         r.TeamID,
			WeekKey:        r.WeekKey,
			GameDay:        r.GameDay,
			GoalsFor:       r.GoalsFor,
			GoalsAgainst:   r.GoalsAgainst,
			Shots:          r.Shots,
			PIM:            r.PIM,
			PowerPlays:     r.PowerPlays,
			PowerPlayGoals: r.PowerPlayGoals,
		})
	}
	for _, r := range slate.TeamSeasons {
		out.TeamSeasons = append(out.TeamSeasons, hockeyTeamSeasonDTO{
			TeamID:         r.TeamID,
			SeasonKey:      r.SeasonKey,
			GamesPlayed:    r.GamesPlayed,
			GoalsFor:       r.GoalsFor,
			GoalsAgainst:   r.GoalsAgainst,
			Shots:          r.Shots,
			PIM:            r.PIM,
			PowerPlays:     r.PowerPlays,
			PowerPlayGoals: r.PowerPlayGoals,
		})
	}
	return out
}

type basketballSlateDTO struct {
	PlayerGames   []basketballPlayerGameDTO   `json:"player_games,omitempty"`
	PlayerSeasons []basketballPlayerSeasonDTO `json:"player_seasons,omitempty"`
	TeamGames     []basketballTeamGameDTO     `json:"team_games,omitempty"`
	TeamSeasons   []basketballTeamSeasonDTO   `json:"team_seasons,omitempty"`
}

type basketballPlayerGameDTO struct {
	PlayerID      int64 `json:"player_id"`
	TeamID        int64 `json:"team_id"`
	WeekKey       int   `json:"week_key"`
	GameDay       int   `json:"game_day"`
	Minutes       int   `json:"minutes"`
	Points        int   `json:"points"`
	Rebounds      int   `json:"rebounds"`
	Assists       int   `json:"assists"`
	Steals        int   `json:"steals"`
	Blocks        int   `json:"blocks"`
	Turnovers     int   `json:"turnovers"`
	FGMade        int   `json:"fg_made"`
	FGAttempts    int   `json:"fg_attempts"`
	ThreesMade    int   `json:"threes_made"`
	ThreeAttempts int   `json:"three_attempts"`
	FTMade        int   `json:"ft_made"`
	FTAttempts    int   `json:"ft_attempts"`
}

type basketballPlayerSeasonDTO struct {
	PlayerID      int64 `json:"player_id"`
	TeamID        int64 `json:"team_id"`
	SeasonKey     int   `json:"season_key"`
	GamesPlayed   int   `json:"games_played"`
	Minutes       int   `json:"minutes"`
	Points        int   `json:"points"`
	Rebounds      int   `json:"rebounds"`
	Assists       int   `json:"assists"`
	Steals        int   `json:"steals"`
	Blocks        int   `json:"blocks"`
	Turnovers     int   `json:"turnovers"`
	FGMade        int   `json:"fg_made"`
	FGAttempts    int   `json:"fg_attempts"`
	ThreesMade    int   `json:"threes_made"`
	ThreeAttempts int   `json:"three_attempts"`
	FTMade        int   `json:"ft_made"`
	FTAttempts    int   `json:"ft_attempts"`
}

type basketballTeamGameDTO struct {
	TeamID        int64 `json:"team_id"`
	WeekKey       int   `json:"week_key"`
	GameDay       int   `json:"game_day"`
	PointsFor     int   `json:"points_for"`
	PointsAgainst int   `json:"points_against"`
	Rebounds      int   `json:"rebounds"`
	Assists       int   `json:"assists"`
	Turnovers     int   `json:"turnovers"`
}

type basketballTeamSeasonDTO struct {
	TeamID        int64 `json:"team_id"`
	SeasonKey     int   `json:"season_key"`
	GamesPlayed   int   `json:"games_played"`
	PointsFor     int   `json:"points_for"`
	PointsAgainst int   `json:"points_against"`
	Rebounds      int   `json:"rebounds"`
	Assists       int   `json:"assists"`
	Turnovers     int   `json:"turnovers"`
}

func basketballSlateToDTO(slate usecase.BasketballSlate) basketballSlateDTO {
	out := basketballSlateDTO{}
	for _, r := range slate.PlayerGames {
		out.PlayerGames = append(out.PlayerGames, basketballPlayerGameDTO{
			PlayerID:      r.PlayerID,
			TeamID:        r.TeamID,
			WeekKey:       r.WeekKey,
			GameDay:       r.GameDay,
			Minutes:       r.Minutes,
			Points:        r.Points,
			Rebounds:      r.Rebounds,
			Assists:       r.Assists,
			Steals:        r.Steals,
			Blocks:        r.Blocks,
			Turnovers:     r.Turnovers,
			FGMade:        r.FGMade,
			FGAttempts:    r.FGAttempts,
			ThreesMade:    r.ThreesMade,
			ThreeAttempts: r.ThreeAttempts,
			FTMade:        r.FTMade,
			FTAttempts:    r.FTAttempts,
		})
	}
	for _, r := range slate.PlayerSeasons {
		out.PlayerSeasons = append(out.PlayerSeasons, basketballPlayerSeasonDTO{
			PlayerID:      r.PlayerID,
			TeamID:        r.TeamID,
			SeasonKey:     r.SeasonKey,
			GamesPlayed:   r.GamesPlayed,
			Minutes:       r.Minutes,
			Points:        r.Points,
			Rebounds:      r.Rebounds,
			Assists:       r.Assists,
			Steals:        r.Steals,
			Blocks:        r.Blocks,
			Turnovers:     r.Turnovers,
			FGMade:        r.FGMade,
			FGAttempts:    r.FGAttempts,
			ThreesMade:    r.ThreesMade,
			ThreeAttempts: r.ThreeAttempts,
			FTMade:        r.FTMade,
			FTAttempts:    r.FTAttempts,
		})
	}
	for _, r := range slate.TeamGames {
		out.TeamGames = append(out.TeamGames, basketballTeamGameDTO{
			TeamID:        r.TeamID,
			WeekKey:       r.WeekKey,
			GameDay:       r.GameDay,
			PointsFor:     r.PointsFor,
			PointsAgainst: r.PointsAgainst,
			Rebounds:      r.Rebounds,
			Assists:       r.Assists,
			Turnovers:     r.Turnovers,
		})
	}
	for _, r := range slate.TeamSeasons {
		out.TeamSeasons = append(out.TeamSeasons, basketballTeamSeasonDTO{
			TeamID:        r.TeamID,
			SeasonKey:     r.SeasonKey,
			GamesPlayed:   r.GamesPlayed,
			PointsFor:     r.PointsFor,
			PointsAgainst: r.PointsAgainst,
			Rebounds:      r.Rebounds,
			Assists:       r.Assists,
			Turnovers:     r.Turnovers,
		})
	}
	return out
}
