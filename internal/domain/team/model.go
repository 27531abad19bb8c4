package team

import "fmt"

// Team is one program or franchise inside a league.
type Team struct {
	ID           int64
	ConferenceID int64
	Conference   string
	Division     string
	// SecondTier marks second-tier college programs; always false for pro
	// leagues.
	SecondTier bool
	Name       string
	Abbr       string
	City       string
}

// Map indexes teams by engine-assigned ID.
type Map map[int64]Team

func NewMap(teams []Team) Map {
	m := make(Map, len(teams))
	for _, t := range teams {
		m[t.ID] = t
	}
	return m
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}
	return nil
}
