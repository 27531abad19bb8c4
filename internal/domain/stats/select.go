package stats

// SelectSlate resolves the stat lines applicable to a week or season view.
// The caller passes the source maps for the subject it is rendering; one
// instantiation per record type covers every league because the control flow
// never inspects the records beyond the game day.
//
// A missing key resolves to an empty slate, never an error. The game-day
// restriction only applies at week granularity; gameDay 0 means the whole
// week.
func SelectSlate[R any](view View, byWeek, bySeason map[int][]R, weekKey, seasonKey, gameDay int, gameDayOf func(R) int) []R {
	if view == ViewBySeason {
		return bySeason[seasonKey]
	}

	recs := byWeek[weekKey]
	if gameDay <= 0 || gameDayOf == nil {
		return recs
	}

	out := make([]R, 0, len(recs))
	for _, r := range recs {
		if gameDayOf(r) == gameDay {
			out = append(out, r)
		}
	}
	return out
}
