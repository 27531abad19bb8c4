package league

import (
	"fmt"
	"strconv"
)

// Option is a label/value pair for selection UI. Value always parses back
// to the exact integer it was built from.
type Option struct {
	Label string
	Value string
}

// SeasonOptions lists the selectable season offsets, 1 up to the current
// season known from the family's Timestamp.
func SeasonOptions(currentSeason int) []Option {
	if currentSeason < 1 {
		return []Option{}
	}

	out := make([]Option, 0, currentSeason)
	for n := 1; n <= currentSeason; n++ {
		out = append(out, Option{
			Label: fmt.Sprintf("Season %d", n),
			Value: strconv.Itoa(n),
		})
	}
	return out
}

// WeekOptions lists the selectable weeks, 1 up to the league's fixed
// regular-season length.
func WeekOptions(l League) []Option {
	weeks := l.WeeksPerSeason()
	out := make([]Option, 0, weeks)
	for n := 1; n <= weeks; n++ {
		out = append(out, Option{
			Label: fmt.Sprintf("Week %d", n),
			Value: strconv.Itoa(n),
		})
	}
	return out
}
