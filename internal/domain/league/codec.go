package league

// Codec folds a (season, week) pair into the single integer keys the engine
// uses for its stat caches. Each family counts seasons from its own launch
// year, so two codecs exist side by side and must never be cross-applied:
// a football week key decoded with the hockey codec is silently wrong, not
// an error.
type Codec struct {
	EpochBase int
}

var (
	// FootballCodec also serves both basketball leagues.
	FootballCodec = Codec{EpochBase: 2023}
	HockeyCodec   = Codec{EpochBase: 2024}
)

// EncodeWeek builds the composite week key for a season offset (seasons are
// numbered from 1 by the engine) and an in-season week. Week range is not
// validated; out-of-range weeks encode deterministically.
func (c Codec) EncodeWeek(week, seasonOffset int) int {
	season := seasonOffset + c.EpochBase
	return (season-2000)*100 + week
}

// DecodeWeek recovers the week number from a composite key given the
// absolute season year it was encoded under.
func (c Codec) DecodeWeek(key, season int) int {
	return key - (season-2000)*100
}

// SeasonKey is the cache key for season-granularity stat collections: the
// absolute season year, the same value EncodeWeek derives internally.
func (c Codec) SeasonKey(seasonOffset int) int {
	return seasonOffset + c.EpochBase
}
