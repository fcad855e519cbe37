package main

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeroshade/ferryapi/types"
)

func mustDate(t *testing.T, day string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(types.DateFormat, day, types.FleetLocation())
	require.NoError(t, err)
	return d
}

// 2026-08-02 is a Sunday, so 08-02 through 08-08 covers every weekday once.
func fullWeekPattern(t *testing.T) types.SchedulePattern {
	t.Helper()
	return types.SchedulePattern{
		RouteID:  2,
		VesselID: 3,
		Start:    mustDate(t, "2026-08-02"),
		End:      mustDate(t, "2026-08-08"),
		Days:     pq.Int64Array{0, 1, 2, 3, 4, 5, 6},
		Slots: []types.TimeSlot{
			{Departure: "07:30", Arrival: "08:00"},
			{Departure: "17:30", Arrival: "18:00"},
		},
		FareMult: 1,
	}
}

func TestExpandPatternFullWeek(t *testing.T) {
	p := fullWeekPattern(t)

	trips := expandPattern(&p)
	assert.Len(t, trips, 14, "7 days x 2 slots")

	for _, trip := range trips {
		assert.Equal(t, uint(2), trip.RouteID)
		assert.Equal(t, uint(3), trip.VesselID)
		assert.Equal(t, types.TripScheduled, trip.Status)
	}
	assert.Equal(t, "2026-08-02", trips[0].TravelDate.Format(types.DateFormat))
	assert.Equal(t, "07:30", trips[0].Departure)
	assert.Equal(t, "2026-08-08", trips[13].TravelDate.Format(types.DateFormat))
	assert.Equal(t, "17:30", trips[13].Departure)
}

func TestExpandPatternWeekdayFilter(t *testing.T) {
	p := fullWeekPattern(t)
	p.Days = pq.Int64Array{1} // Mondays only

	trips := expandPattern(&p)
	require.Len(t, trips, 2)
	for _, trip := range trips {
		assert.Equal(t, time.Monday, trip.TravelDate.Weekday())
		assert.Equal(t, "2026-08-03", trip.TravelDate.Format(types.DateFormat))
	}
}

func TestExpandPatternSkipDates(t *testing.T) {
	p := fullWeekPattern(t)
	p.SkipDates = pq.StringArray{"2026-08-05", "2026-08-06"}

	trips := expandPattern(&p)
	assert.Len(t, trips, 10)
	for _, trip := range trips {
		day := trip.TravelDate.Format(types.DateFormat)
		assert.NotEqual(t, "2026-08-05", day)
		assert.NotEqual(t, "2026-08-06", day)
	}
}

func TestSplitConflictsAgainstExisting(t *testing.T) {
	p := fullWeekPattern(t)
	candidates := expandPattern(&p)

	// same vessel sails another route at one of the candidate times
	existing := []types.Trip{{
		RouteID:    99,
		VesselID:   3,
		TravelDate: mustDate(t, "2026-08-04"),
		Departure:  "07:30",
		Status:     types.TripScheduled,
	}}

	safe, conflicts := splitConflicts(candidates, existing)
	assert.Len(t, safe, 13)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "2026-08-04", conflicts[0].TravelDate.Format(types.DateFormat))
	assert.Equal(t, "07:30", conflicts[0].Departure)
}

func TestSplitConflictsWithinRequest(t *testing.T) {
	p := fullWeekPattern(t)
	p.Days = pq.Int64Array{2}
	p.Slots = []types.TimeSlot{
		{Departure: "07:30", Arrival: "08:00"},
		{Departure: "07:30", Arrival: "08:15"},
	}

	safe, conflicts := splitConflicts(expandPattern(&p), nil)
	assert.Len(t, safe, 1)
	assert.Len(t, conflicts, 1)
}

func TestSplitConflictsDifferentVesselNoConflict(t *testing.T) {
	p := fullWeekPattern(t)
	candidates := expandPattern(&p)

	existing := []types.Trip{{
		VesselID:   8,
		TravelDate: mustDate(t, "2026-08-04"),
		Departure:  "07:30",
	}}

	safe, conflicts := splitConflicts(candidates, existing)
	assert.Len(t, safe, 14)
	assert.Empty(t, conflicts)
}

func TestValidPattern(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*types.SchedulePattern)
		errmsg string
	}{
		{"valid", func(p *types.SchedulePattern) {}, ""},
		{"missing route", func(p *types.SchedulePattern) { p.RouteID = 0 }, "route and vessel are required"},
		{"end before start", func(p *types.SchedulePattern) { p.End = p.Start.AddDate(0, 0, -1) }, "end date before start date"},
		{"range too long", func(p *types.SchedulePattern) { p.End = p.Start.AddDate(0, 0, 400) }, "date range exceeds one year"},
		{"no weekdays", func(p *types.SchedulePattern) { p.Days = nil }, "select at least one weekday"},
		{"bad weekday", func(p *types.SchedulePattern) { p.Days = pq.Int64Array{7} }, "weekday values must be 0 through 6"},
		{"no slots", func(p *types.SchedulePattern) { p.Slots = nil }, "at least one time slot is required"},
		{"bad slot time", func(p *types.SchedulePattern) {
			p.Slots = []types.TimeSlot{{Departure: "7am", Arrival: "08:00"}}
		}, "bad departure time 7am"},
		{"arrival before departure", func(p *types.SchedulePattern) {
			p.Slots = []types.TimeSlot{{Departure: "08:00", Arrival: "07:30"}}
		}, "departure must be before arrival"},
		{"zero fare multiplier", func(p *types.SchedulePattern) { p.FareMult = 0 }, "fare multiplier must be greater than zero"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := fullWeekPattern(t)
			tc.mutate(&p)

			msg, ok := validPattern(&p)
			if tc.errmsg == "" {
				assert.True(t, ok)
			} else {
				assert.False(t, ok)
				assert.Equal(t, tc.errmsg, msg)
			}
		})
	}
}
