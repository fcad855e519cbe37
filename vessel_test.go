package main

import (
	"testing"

	"github.com/zeroshade/ferryapi/types"
)

func TestValidVessel(t *testing.T) {
	base := types.Vessel{Name: "Sea Dragon", Capacity: 48, Status: types.VesselInService}

	cases := []struct {
		name   string
		mutate func(v *types.Vessel)
		want   string
	}{
		{"ok", func(v *types.Vessel) {}, ""},
		{"empty status ok", func(v *types.Vessel) { v.Status = "" }, ""},
		{"zero capacity", func(v *types.Vessel) { v.Capacity = 0 }, "capacity must be greater than zero"},
		{"unknown status", func(v *types.Vessel) { v.Status = "scuttled" }, "unknown vessel status"},
		{"bad maintenance start", func(v *types.Vessel) {
			v.MaintenanceStart = "next tuesday"
			v.MaintenanceEnd = "2026-09-10"
		}, "bad maintenance start date"},
		{"bad maintenance end", func(v *types.Vessel) {
			v.MaintenanceStart = "2026-09-01"
			v.MaintenanceEnd = "soon"
		}, "bad maintenance end date"},
		{"maintenance window reversed", func(v *types.Vessel) {
			v.MaintenanceStart = "2026-09-10"
			v.MaintenanceEnd = "2026-09-01"
		}, "maintenance end before start"},
		{"maintenance window ok", func(v *types.Vessel) {
			v.MaintenanceStart = "2026-09-01"
			v.MaintenanceEnd = "2026-09-10"
			v.Status = types.VesselMaintenance
		}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := base
			tc.mutate(&v)
			msg, ok := validVessel(&v)
			if tc.want == "" {
				if !ok {
					t.Fatalf("expected valid vessel, got %q", msg)
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
