package main

import (
	"time"

	"github.com/zeroshade/ferryapi/types"
)

// maxPatternDays caps a single generation request at one year of sailings.
const maxPatternDays = 366

const slotFormat = "15:04"

func validPattern(p *types.SchedulePattern) (string, bool) {
	if p.RouteID == 0 || p.VesselID == 0 {
		return "route and vessel are required", false
	}
	if p.End.Before(p.Start) {
		return "end date before start date", false
	}
	if int(p.End.Sub(p.Start).Hours()/24) >= maxPatternDays {
		return "date range exceeds one year", false
	}
	if len(p.Days) == 0 {
		return "select at least one weekday", false
	}
	for _, d := range p.Days {
		if d < 0 || d > 6 {
			return "weekday values must be 0 through 6", false
		}
	}
	if len(p.Slots) == 0 {
		return "at least one time slot is required", false
	}
	for _, s := range p.Slots {
		dep, err := time.Parse(slotFormat, s.Departure)
		if err != nil {
			return "bad departure time " + s.Departure, false
		}
		arr, err := time.Parse(slotFormat, s.Arrival)
		if err != nil {
			return "bad arrival time " + s.Arrival, false
		}
		if !dep.Before(arr) {
			return "departure must be before arrival", false
		}
	}
	if p.FareMult <= 0 {
		return "fare multiplier must be greater than zero", false
	}
	return "", true
}

// expandPattern walks the date range inclusive, keeps days matching the
// selected weekdays, drops skipped dates, and crosses the remainder with
// every time slot. A 7-day range with all weekdays selected and N slots
// yields exactly 7*N candidates.
func expandPattern(p *types.SchedulePattern) []types.Trip {
	days := make(map[time.Weekday]bool, len(p.Days))
	for _, d := range p.Days {
		days[time.Weekday(d)] = true
	}

	skip := make(map[string]bool, len(p.SkipDates))
	for _, d := range p.SkipDates {
		skip[d] = true
	}

	var out []types.Trip
	for d := p.Start; !d.After(p.End); d = d.AddDate(0, 0, 1) {
		if !days[d.Weekday()] || skip[d.Format(types.DateFormat)] {
			continue
		}
		for _, slot := range p.Slots {
			out = append(out, types.Trip{
				RouteID:    p.RouteID,
				VesselID:   p.VesselID,
				TravelDate: d,
				Departure:  slot.Departure,
				Arrival:    slot.Arrival,
				Status:     types.TripScheduled,
				FareMult:   p.FareMult,
			})
		}
	}
	return out
}

// sailingKey identifies a sailing for conflict purposes: one vessel cannot
// leave twice at the same moment, whatever the route.
type sailingKey struct {
	Vessel    uint
	Date      string
	Departure string
}

func keyOf(t *types.Trip) sailingKey {
	return sailingKey{
		Vessel:    t.VesselID,
		Date:      t.TravelDate.Format(types.DateFormat),
		Departure: t.Departure,
	}
}

// splitConflicts partitions candidates into those safe to insert and those
// colliding with an existing trip. Duplicate candidates within one request
// also count as conflicts.
func splitConflicts(candidates, existing []types.Trip) (safe, conflicts []types.Trip) {
	taken := make(map[sailingKey]bool, len(existing))
	for i := range existing {
		taken[keyOf(&existing[i])] = true
	}

	safe = make([]types.Trip, 0, len(candidates))
	conflicts = make([]types.Trip, 0)
	for i := range candidates {
		k := keyOf(&candidates[i])
		if taken[k] {
			conflicts = append(conflicts, candidates[i])
			continue
		}
		taken[k] = true
		safe = append(safe, candidates[i])
	}
	return safe, conflicts
}
