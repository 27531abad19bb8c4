package stats

// Subject is whether a stat view concerns players or teams.
type Subject string

const (
	SubjectPlayer Subject = "player"
	SubjectTeam   Subject = "team"
)

// View is the granularity of a stat view.
type View string

const (
	ViewByWeek   View = "week"
	ViewBySeason View = "season"
)

// Stat lines are flat engine-supplied records; a counter the engine did not
// report is zero. Game lines carry the composite week key plus the game day
// within that week, season lines carry the season key.

// FootballUsage holds the activity counters shared by football game and
// season lines. Category eligibility reads only these.
type FootballUsage struct {
	PassAttempts int
	RushAttempts int
	Targets      int
	DefSnaps     int
	KickReturns  int
	PuntReturns  int
	FGAttempts   int
	XPAttempts   int
	Punts        int
}

// UsageCounters lets both football line types satisfy FootballLine through
// embedding.
func (u FootballUsage) UsageCounters() FootballUsage { return u }

// FootballLine is any record football category predicates can be applied to.
type FootballLine interface {
	UsageCounters() FootballUsage
}

type FootballPlayerGame struct {
	PlayerID int64
	TeamID   int64
	WeekKey  int
	GameDay  int
	FootballUsage
	PassCompletions     int
	PassYards           int
	PassTDs             int
	InterceptionsThrown int
	RushYards           int
	RushTDs             int
	Receptions          int
	RecYards            int
	RecTDs              int
	Tackles             int
	Sacks               int
	DefInterceptions    int
	KickReturnYards     int
	PuntReturnYards     int
	FGMade              int
	XPMade              int
	PuntYards           int
}

type FootballPlayerSeason struct {
	PlayerID    int64
	TeamID      int64
	SeasonKey   int
	GamesPlayed int
	FootballUsage
	PassCompletions     int
	PassYards           int
	PassTDs             int
	InterceptionsThrown int
	RushYards           int
	RushTDs             int
	Receptions          int
	RecYards            int
	RecTDs              int
	Tackles             int
	Sacks               int
	DefInterceptions    int
	KickReturnYards     int
	PuntReturnYards     int
	FGMade              int
	XPMade              int
	PuntYards           int
}

type FootballTeamGame struct {
	TeamID        int64
	WeekKey       int
	GameDay       int
	PointsFor     int
	PointsAgainst int
	TotalYards    int
	PassYards     int
	RushYards     int
	Turnovers     int
}

type FootballTeamSeason struct {
	TeamID        int64
	SeasonKey     int
	GamesPlayed   int
	PointsFor     int
	PointsAgainst int
	TotalYards    int
	PassYards     int
	RushYards     int
	Turnovers     int
}

// Hockey game lines key the athlete as SkaterID; the engine names the
// foreign key differently per sport and the resolvers absorb that.

type HockeyPlayerGame struct {
	SkaterID     int64
	TeamID       int64
	WeekKey      int
	GameDay      int
	Goals        int
	Assists      int
	Shots        int
	PIM          int
	PlusMinus    int
	Saves        int
	ShotsAgainst int
	GoalsAgainst int
	Shutouts     int
}

type HockeyPlayerSeason struct {
	SkaterID     int64
	TeamID       int64
	SeasonKey    int
	GamesPlayed  int
	Goals        int
	Assists      int
	Shots        int
	PIM          int
	PlusMinus    int
	Saves        int
	ShotsAgainst int
	GoalsAgainst int
	Shutouts     int
}

type HockeyTeamGame struct {
	TeamID         int64
	WeekKey        int
	GameDay        int
	GoalsFor       int
	GoalsAgainst   int
	Shots          int
	PIM            int
	PowerPlays     int
	PowerPlayGoals int
}

type HockeyTeamSeason struct {
	TeamID         int64
	SeasonKey      int
	GamesPlayed    int
	GoalsFor       int
	GoalsAgainst   int
	Shots          int
	PIM            int
	PowerPlays     int
	PowerPlayGoals int
}

type BasketballPlayerGame struct {
	PlayerID      int64
	TeamID        int64
	WeekKey       int
	GameDay       int
	Minutes       int
	Points        int
	Rebounds      int
	Assists       int
	Steals        int
	Blocks        int
	Turnovers     int
	FGMade        int
	FGAttempts    int
	ThreesMade    int
	ThreeAttempts int
	FTMade        int
	FTAttempts    int
}

type BasketballPlayerSeason struct {
	PlayerID      int64
	TeamID        int64
	SeasonKey     int
	GamesPlayed   int
	Minutes       int
	Points        int
	Rebounds      int
	Assists       int
	Steals        int
	Blocks        int
	Turnovers     int
	FGMade        int
	FGAttempts    int
	ThreesMade    int
	ThreeAttempts int
	FTMade        int
	FTAttempts    int
}

type BasketballTeamGame struct {
	TeamID        int64
	WeekKey       int
	GameDay       int
	PointsFor     int
	PointsAgainst int
	Rebounds      int
	Assists       int
	Turnovers     int
}

type BasketballTeamSeason struct {
	TeamID        int64
	SeasonKey     int
	GamesPlayed   int
	PointsFor     int
	PointsAgainst int
	Rebounds      int
	Assists       int
	Turnovers     int
}
