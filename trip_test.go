package main

import (
	"testing"

	"github.com/zeroshade/ferryapi/types"
)

func TestValidTrip(t *testing.T) {
	base := types.Trip{
		RouteID:   1,
		VesselID:  2,
		Departure: "07:30",
		Arrival:   "08:15",
		Status:    types.TripScheduled,
		FareMult:  1,
	}

	cases := []struct {
		name   string
		mutate func(tr *types.Trip)
		want   string
	}{
		{"ok", func(tr *types.Trip) {}, ""},
		{"blank status ok", func(tr *types.Trip) { tr.Status = "" }, ""},
		{"bad departure", func(tr *types.Trip) { tr.Departure = "half past seven" }, "bad departure time"},
		{"bad arrival", func(tr *types.Trip) { tr.Arrival = "25:99" }, "bad arrival time"},
		{"reversed times", func(tr *types.Trip) { tr.Departure = "09:00"; tr.Arrival = "08:00" }, "departure must be before arrival"},
		{"equal times", func(tr *types.Trip) { tr.Arrival = tr.Departure }, "departure must be before arrival"},
		{"zero fare mult", func(tr *types.Trip) { tr.FareMult = 0 }, "fare multiplier must be greater than zero"},
		{"unknown status", func(tr *types.Trip) { tr.Status = "capsized" }, "unknown trip status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := base
			tc.mutate(&tr)
			msg, ok := validTrip(&tr)
			if tc.want == "" {
				if !ok {
					t.Fatalf("expected valid trip, got %q", msg)
				}
				return
			}
			if ok {
				t.Fatal("expected validation failure")
			}
			if msg != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, msg)
			}
		})
	}
}
