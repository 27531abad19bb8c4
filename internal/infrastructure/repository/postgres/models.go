package postgres

import "time"

// Table models mirror the snapshot schema in migrations/. Replace writes
// soft-delete the previous snapshot and upsert the new rows, so reads
// always filter on deleted_at.

type teamTableModel struct {
	ID           int64      `db:"id"`
	League       string     `db:"league"`
	TeamID       int64      `db:"team_id"`
	ConferenceID int64      `db:"conference_id"`
	Conference   string     `db:"conference"`
	Division     string     `db:"division"`
	SecondTier   bool       `db:"second_tier"`
	Name         string     `db:"name"`
	Abbr         string     `db:"abbr"`
	City         string     `db:"city"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type teamInsertModel struct {
	League       string `db:"league"`
	TeamID       int64  `db:"team_id"`
	ConferenceID int64  `db:"conference_id"`
	Conference   string `db:"conference"`
	Division     string `db:"division"`
	SecondTier   bool   `db:"second_tier"`
	Name         string `db:"name"`
	Abbr         string `db:"abbr"`
	City         string `db:"city"`
}

type playerTableModel struct {
	ID        int64      `db:"id"`
	League    string     `db:"league"`
	PlayerID  int64      `db:"player_id"`
	TeamID    int64      `db:"team_id"`
	Position  string     `db:"position"`
	FirstName string     `db:"first_name"`
	LastName  string     `db:"last_name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type playerInsertModel struct {
	League    string `db:"league"`
	PlayerID  int64  `db:"player_id"`
	TeamID    int64  `db:"team_id"`
	Position  string `db:"position"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
}

type standingTableModel struct {
	ID         int64      `db:"id"`
	League     string     `db:"league"`
	TeamID     int64      `db:"team_id"`
	Conference string     `db:"conference"`
	Division   string     `db:"division"`
	Wins       int        `db:"wins"`
	Losses     int        `db:"losses"`
	Ties       int        `db:"ties"`
	OTLosses   int        `db:"ot_losses"`
	Points     int        `db:"points"`
	Position   int        `db:"position"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type standingInsertModel struct {
	League     string `db:"league"`
	TeamID     int64  `db:"team_id"`
	Conference string `db:"conference"`
	Division   string `db:"division"`
	Wins       int    `db:"wins"`
	Losses     int    `db:"losses"`
	Ties       int    `db:"ties"`
	OTLosses   int    `db:"ot_losses"`
	Points     int    `db:"points"`
	Position   int    `db:"position"`
}

type gameTableModel struct {
	ID         int64      `db:"id"`
	League     string     `db:"league"`
	GameID     int64      `db:"game_id"`
	WeekKey    int        `db:"week_key"`
	GameDay    int        `db:"game_day"`
	Timeslot   int        `db:"timeslot"`
	HomeTeamID int64      `db:"home_team_id"`
	AwayTeamID int64      `db:"away_team_id"`
	HomeScore  int        `db:"home_score"`
	AwayScore  int        `db:"away_score"`
	Played     bool       `db:"played"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}

type gameInsertModel struct {
	League     string `db:"league"`
	GameID     int64  `db:"game_id"`
	WeekKey    int    `db:"week_key"`
	GameDay    int    `db:"game_day"`
	Timeslot   int    `db:"timeslot"`
	HomeTeamID int64  `db:"home_team_id"`
	AwayTeamID int64  `db:"away_team_id"`
	HomeScore  int    `db:"home_score"`
	AwayScore  int    `db:"away_score"`
	Played     bool   `db:"played"`
}
