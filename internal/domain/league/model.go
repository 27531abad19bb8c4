package league

import "fmt"

// League identifies one simulated competition on the platform.
type League string

const (
	CollegeFootball   League = "CFB"
	ProFootball       League = "PFL"
	CollegeHockey     League = "CHL"
	ProHockey         League = "PHL"
	CollegeBasketball League = "CBB"
	ProBasketball     League = "PBA"
)

// Family groups a college league with its professional counterpart.
// Basketball rides on the football family's season epoch.
type Family string

const (
	FamilyFootball   Family = "football"
	FamilyHockey     Family = "hockey"
	FamilyBasketball Family = "basketball"
)

var AllLeagues = []League{
	CollegeFootball,
	ProFootball,
	CollegeHockey,
	ProHockey,
	CollegeBasketball,
	ProBasketball,
}

var familyByLeague = map[League]Family{
	CollegeFootball:   FamilyFootball,
	ProFootball:       FamilyFootball,
	CollegeHockey:     FamilyHockey,
	ProHockey:         FamilyHockey,
	CollegeBasketball: FamilyBasketball,
	ProBasketball:     FamilyBasketball,
}

var weeksPerSeason = map[League]int{
	CollegeFootball:   14,
	ProFootball:       18,
	CollegeHockey:     21,
	ProHockey:         21,
	CollegeBasketball: 20,
	ProBasketball:     20,
}

// College leagues carry the top-tier/second-tier program split.
var collegeLeagues = map[League]bool{
	CollegeFootball:   true,
	CollegeHockey:     true,
	CollegeBasketball: true,
}

func Parse(raw string) (League, error) {
	l := League(raw)
	if _, ok := familyByLeague[l]; !ok {
		return "", fmt.Errorf("unknown league: %q", raw)
	}
	return l, nil
}

func (l League) Family() Family {
	return familyByLeague[l]
}

func (l League) WeeksPerSeason() int {
	return weeksPerSeason[l]
}

func (l League) IsCollege() bool {
	return collegeLeagues[l]
}

// Codec returns the week-key codec for this league's family.
// Basketball shares the football epoch.
func (l League) Codec() Codec {
	if l.Family() == FamilyHockey {
		return HockeyCodec
	}
	return FootballCodec
}

// Timestamp is the engine's current season/week pointer for one family.
// Owned by the backend; read-only here.
type Timestamp struct {
	Season int
	Week   int
}
