package arena

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pressboxhq/pressbox/internal/domain/league"
	"github.com/pressboxhq/pressbox/internal/domain/stats"
)

// Stat endpoints share one wire shape per sport; game rows carry week_key
// and game_day, season rows carry season_key and games_played, and the
// mapper picks whichever half applies.

type footballPlayerLine struct {
	PlayerID    int64 `json:"player_id"`
	TeamID      int64 `json:"team_id"`
	WeekKey     int   `json:"week_key"`
	GameDay     int   `json:"game_day"`
	SeasonKey   int   `json:"season_key"`
	GamesPlayed int   `json:"games_played"`

	PassAttempts int `json:"pass_attempts"`
	RushAttempts int `json:"rush_attempts"`
	Targets      int `json:"targets"`
	DefSnaps     int `json:"def_snaps"`
	KickReturns  int `json:"kick_returns"`
	PuntReturns  int `json:"punt_returns"`
	FGAttempts   int `json:"fg_attempts"`
	XPAttempts   int `json:"xp_attempts"`
	Punts        int `json:"punts"`

	PassCompletions     int `json:"pass_completions"`
	PassYards           int `json:"pass_yards"`
	PassTDs             int `json:"pass_tds"`
	InterceptionsThrown int `json:"interceptions_thrown"`
	RushYards           int `json:"rush_yards"`
	RushTDs             int `json:"rush_tds"`
	Receptions          int `json:"receptions"`
	RecYards            int `json:"rec_yards"`
	RecTDs              int `json:"rec_tds"`
	Tackles             int `json:"tackles"`
	Sacks               int `json:"sacks"`
	DefInterceptions    int `json:"def_interceptions"`
	KickReturnYards     int `json:"kick_return_yards"`
	PuntReturnYards     int `json:"punt_return_yards"`
	FGMade              int `json:"fg_made"`
	XPMade              int `json:"xp_made"`
	PuntYards           int `json:"punt_yards"`
}

func (r footballPlayerLine) usage() stats.FootballUsage {
	return stats.FootballUsage{
		PassAttempts: r.PassAttempts,
		RushAttempts: r.RushAttempts,
		Targets:      r.Targets,
		DefSnaps:     r.DefSnaps,
		KickReturns:  r.KickReturns,
		PuntReturns:  r.PuntReturns,
		FGAttempts:   r.FGAttempts,
		XPAttempts:   r.XPAttempts,
		Punts:        r.Punts,
	}
}

type footballTeamLine struct {
	TeamID      int64 `json:"team_id"`
	WeekKey     int   `json:"week_key"`
	GameDay     int   `json:"game_day"`
	SeasonKey   int   `json:"season_key"`
	GamesPlayed int   `json:"games_played"`

	PointsFor     int `json:"points_for"`
	PointsAgainst int `json:"points_against"`
	TotalYards    int `json:"total_yards"`
	PassYards     int `json:"pass_yards"`
	RushYards     int `json:"rush_yards"`
	Turnovers     int `json:"turnovers"`
}

type hockeyPlayerLine struct {
	SkaterID    int64 `json:"skater_id"`
	TeamID      int64 `json:"team_id"`
	WeekKey     int   `json:"week_key"`
	GameDay     int   `json:"game_day"`
	SeasonKey   int   `json:"season_key"`
	GamesPlayed int   `json:"games_played"`

	Goals     int `json:"goals"`
	Assists   int `json:"assists"`
	Shots     int `json:"shots"`
	PIM       int `json:"pim"`
	PlusMinus int `json:"plus_minus"`

	Saves        int `json:"saves"`
	ShotsAgainst int `json:"shots_against"`
	GoalsAgainst int `json:"goals_against"`
	Shutouts     int `json:"shutouts"`
}

type hockeyTeamLine struct {
	TeamID      int64 `json:"team_id"`
	WeekKey     int   `json:"week_key"`
	GameDay     int   `json:"game_day"`
	SeasonKey   int   `json:"season_key"`
	GamesPlayed int   `json:"games_played"`

	GoalsFor       int `json:"goals_for"`
	GoalsAgainst   int `json:"goals_against"`
	Shots          int `json:"shots"`
	PIM            int `json:"pim"`
	PowerPlays     int `json:"power_plays"`
	PowerPlayGoals int `json:"power_play_goals"`
}

type basketballPlayerLine struct {
	PlayerID    int64 `json:"player_id"`
	TeamID      int64 `json:"team_id"`
	WeekKey     int   `json:"week_key"`
	GameDay     int   `json:"game_day"`
	SeasonKey   int   `json:"season_key"`
	GamesPlayed int   `json:"games_played"`

	Minutes       int `json:"minutes"`
	Points        int `json:"points"`
	Rebounds      int `json:"rebounds"`
	Assists       int `json:"assists"`
	Steals        int `json:"steals"`
	Blocks        int `json:"blocks"`
	Turnovers     int `json:"turnovers"`
	FGMade        int `json:"fg_made"`
	FGAttempts    int `json:"fg_attempts"`
	ThreesMade    int `json:"threes_made"`
	ThreeAttempts int `json:"three_attempts"`
	FTMade        int `json:"ft_made"`
	FTAttempts    int `json:"ft_attempts"`
}

type basketballTeamLine struct {
	TeamID      int64 `json:"team_id"`
	WeekKey     int   `json:"week_key"`
	GameDay     int   `json:"game_day"`
	SeasonKey   int   `json:"season_key"`
	GamesPlayed int   `json:"games_played"`

	PointsFor     int `json:"points_for"`
	PointsAgainst int `json:"points_against"`
	Rebounds      int `json:"rebounds"`
	Assists       int `json:"assists"`
	Turnovers     int `json:"turnovers"`
}

func fetchStatList[Row, Out any](c *Client, ctx context.Context, l league.League, path, keyParam string, key int, mapRow func(Row) Out) ([]Out, error) {
	var envelope struct {
		Data []Row `json:"data"`
	}
	query := map[string]string{keyParam: strconv.Itoa(key)}
	if err := c.doJSON(ctx, "/"+string(l)+path, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch stats league=%s path=%s key=%d: %w", l, path, key, err)
	}

	out := make([]Out, 0, len(envelope.Data))
	for _, row := range envelope.Data {
		out = append(out, mapRow(row))
	}
	return out, nil
}

func (c *Client) FootballPlayerGames(ctx context.Context, l league.League, weekKey int) ([]stats.FootballPlayerGame, error) {
	return fetchStatList(c, ctx, l, "/stats/players/week", "week", weekKey, func(r footballPlayerLine) stats.FootballPlayerGame {
		return stats.FootballPlayerGame{
			PlayerID:            r.PlayerID,
			TeamID:              r.TeamID,
			WeekKey:             r.WeekKey,
			GameDay:             r.GameDay,
			FootballUsage:       r.usage(),
			PassCompletions:     r.PassCompletions,
			PassYards:           r.PassYards,
			PassTDs:             r.PassTDs,
			InterceptionsThrown: r.InterceptionsThrown,
			RushYards:           r.RushYards,
			RushTDs:             r.RushTDs,
			Receptions:          r.Receptions,
			RecYards:            r.RecYards,
			RecTDs:              r.RecTDs,
			Tackles:             r.Tackles,
			Sacks:               r.Sacks,
			DefInterceptions:    r.DefInterceptions,
			KickReturnYards:     r.KickReturnYards,
			PuntReturnYards:     r.PuntReturnYards,
			FGMade:              r.FGMade,
			XPMade:              r.XPMade,
			PuntYards:           r.PuntYards,
		}
	})
}

func (c *Client) FootballPlayerSeasons(ctx context.Context, l league.League, seasonKey int) ([]stats.FootballPlayerSeason, error) {
	return fetchStatList(c, ctx, l, "/stats/players/season", "season", seasonKey, func(r footballPlayerLine) stats.FootballPlayerSeason {
		return stats.FootballPlayerSeason{
			PlayerID:            r.PlayerID,
			TeamID:              r.TeamID,
			SeasonKey:           r.SeasonKey,
			GamesPlayed:         r.GamesPlayed,
			FootballUsage:       r.usage(),
			PassCompletions:     r.PassCompletions,
			PassYards:           r.PassYards,
			PassTDs:             r.PassTDs,
			InterceptionsThrown: r.InterceptionsThrown,
			RushYards:           r.RushYards,
			RushTDs:             r.RushTDs,
			Receptions:          r.Receptions,
			RecYards:            r.RecYards,
			RecTDs:              r.RecTDs,
			Tackles:             r.Tackles,
			Sacks:               r.Sacks,
			DefInterceptions:    r.DefInterceptions,
			KickReturnYards:     r.KickReturnYards,
			PuntReturnYards:     r.PuntReturnYards,
			FGMade:              r.FGMade,
			XPMade:              r.XPMade,
			PuntYards:           r.PuntYards,
		}
	})
}

func (c *Client) FootballTeamGames(ctx context.Context, l league.League, weekKey int) ([]stats.FootballTeamGame, error) {
	return fetchStatList(c, ctx, l, "/stats/teams/week", "week", weekKey, func(r footballTeamLine) stats.FootballTeamGame {
		return stats.FootballTeamGame{
			TeamID:        r.TeamID,
			WeekKey:       r.WeekKey,
			GameDay:       r.GameDay,
			PointsFor:     r.PointsFor,
			PointsAgainst: r.PointsAgainst,
			TotalYards:    r.TotalYards,
			PassYards:     r.PassYards,
			RushYards:     r.RushYards,
			Turnovers:     r.Turnovers,
		}
	})
}

func (c *Client) FootballTeamSeasons(ctx context.Context, l league.League, seasonKey int) ([]stats.FootballTeamSeason, error) {
	return fetchStatList(c, ctx, l, "/stats/teams/season", "season", seasonKey, func(r footballTeamLine) stats.FootballTeamSeason {
		return stats.FootballTeamSeason{
			TeamID:        r.TeamID,
			SeasonKey:     r.SeasonKey,
			GamesPlayed:   r.GamesPlayed,
			PointsFor:     r.PointsFor,
			PointsAgainst: r.PointsAgainst,
			TotalYards:    r.TotalYards,
			PassYards:     r.PassYards,
			RushYards:     r.RushYards,
			Turnovers:     r.Turnovers,
		}
	})
}

func (c *Client) HockeyPlayerGames(ctx context.Context, l league.League, weekKey int) ([]stats.HockeyPlayerGame, error) {
	return fetchStatList(c, ctx, l, "/stats/players/week", "week", weekKey, func(r hockeyPlayerLine) stats.HockeyPlayerGame {
		return stats.HockeyPlayerGame{
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
		}
	})
}

func (c *Client) HockeyPlayerSeasons(ctx context.Context, l league.League, seasonKey int) ([]stats.HockeyPlayerSeason, error) {
	return fetchStatList(c, ctx, l, "/stats/players/season", "season", seasonKey, func(r hockeyPlayerLine) stats.HockeyPlayerSeason {
		return stats.HockeyPlayerSeason{
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
		}
	})
}

func (c *Client) HockeyTeamGames(ctx context.Context, l league.League, weekKey int) ([]stats.HockeyTeamGame, error) {
	return fetchStatList(c, ctx, l, "/stats/teams/week", "week", weekKey, func(r hockeyTeamLine) stats.HockeyTeamGame {
		return stats.HockeyTeamGame{
			TeamID:         r.TeamID,
			WeekKey:        r.WeekKey,
			GameDay:        r.GameDay,
			GoalsFor:       r.GoalsFor,
			GoalsAgainst:   r.GoalsAgainst,
			Shots:          r.Shots,
			PIM:            r.PIM,
			PowerPlays:     r.PowerPlays,
			PowerPlayGoals: r.PowerPlayGoals,
		}
	})
}

func (c *Client) HockeyTeamSeasons(ctx context.Context, l league.League, seasonKey int) ([]stats.HockeyTeamSeason, error) {
	return fetchStatList(c, ctx, l, "/stats/teams/season", "season", seasonKey, func(r hockeyTeamLine) stats.HockeyTeamSeason {
		return stats.HockeyTeamSeason{
			TeamID:         r.TeamID,
			SeasonKey:      r.SeasonKey,
			GamesPlayed:    r.GamesPlayed,
			GoalsFor:       r.GoalsFor,
			GoalsAgainst:   r.GoalsAgainst,
			Shots:          r.Shots,
			PIM:            r.PIM,
			PowerPlays:     r.PowerPlays,
			PowerPlayGoals: r.PowerPlayGoals,
		}
	})
}

func (c *Client) BasketballPlayerGames(ctx context.Context, l league.League, weekKey int) ([]stats.BasketballPlayerGame, error) {
	return fetchStatList(c, ctx, l, "/stats/players/week", "week", weekKey, func(r basketballPlayerLine) stats.BasketballPlayerGame {
		return stats.BasketballPlayerGame{
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
		}
	})
}

func (c *Client) BasketballPlayerSeasons(ctx context.Context, l league.League, seasonKey int) ([]stats.BasketballPlayerSeason, error) {
	return fetchStatList(c, ctx, l, "/stats/players/season", "season", seasonKey, func(r basketballPlayerLine) stats.BasketballPlayerSeason {
		return stats.BasketballPlayerSeason{
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
		}
	})
}

func (c *Client) BasketballTeamGames(ctx context.Context, l league.League, weekKey int) ([]stats.BasketballTeamGame, error) {
	return fetchStatList(c, ctx, l, "/stats/teams/week", "week", weekKey, func(r basketballTeamLine) stats.BasketballTeamGame {
		return stats.BasketballTeamGame{
			TeamID:        r.TeamID,
			WeekKey:       r.WeekKey,
			GameDay:       r.GameDay,
			PointsFor:     r.PointsFor,
			PointsAgainst: r.PointsAgainst,
			Rebounds:      r.Rebounds,
			Assists:       r.Assists,
			Turnovers:     r.Turnovers,
		}
	})
}

func (c *Client) BasketballTeamSeasons(ctx context.Context, l league.League, seasonKey int) ([]stats.BasketballTeamSeason, error) {
	return fetchStatList(c, ctx, l, "/stats/teams/season", "season", seasonKey, func(r basketballTeamLine) stats.BasketballTeamSeason {
		return stats.BasketballTeamSeason{
			TeamID:        r.TeamID,
			SeasonKey:     r.SeasonKey,
			GamesPlayed:   r.GamesPlayed,
			PointsFor:     r.PointsFor,
			PointsAgainst: r.PointsAgainst,
			Rebounds:      r.Rebounds,
			Assists:       r.Assists,
			Turnovers:     r.Turnovers,
		}
	})
}
