package roster

// FreeAgentKey is the reserved roster key for unsigned players.
const FreeAgentKey int64 = 0

// PositionGoalie is the hockey goalie position code; every other code is a
// skater.
const PositionGoalie = "G"

// Player is one athlete as supplied by the engine. TeamID is zero for
// unsigned players.
type Player struct {
	ID        int64
	TeamID    int64
	Position  string
	FirstName string
	LastName  string
}

// Map indexes players by engine-assigned ID.
type Map map[int64]Player
