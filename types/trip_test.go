package types

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestTripJSONRoundTrip(t *testing.T) {
	in := `{"routeId": 3, "vesselId": 5, "travelDate": "2026-08-14", "departure": "07:30", "arrival": "08:00"}`

	var trip Trip
	if err := json.Unmarshal([]byte(in), &trip); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	want := time.Date(2026, time.August, 14, 0, 0, 0, 0, FleetLocation())
	if !trip.TravelDate.Equal(want) {
		t.Fatalf("travel date = %v, want %v", trip.TravelDate, want)
	}

	out, err := json.Marshal(&trip)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if !strings.Contains(string(out), `"travelDate":"2026-08-14"`) {
		t.Fatalf("expected date-only travelDate field, got %s", out)
	}
}

func TestTripUnmarshalBadDate(t *testing.T) {
	var trip Trip
	err := json.Unmarshal([]byte(`{"routeId": 1, "vesselId": 1, "travelDate": "14/08/2026"}`), &trip)
	if err == nil {
		t.Fatal("expected a parse error for a non ISO date")
	}
}

func TestSchedulePatternUnmarshal(t *testing.T) {
	in := `{
		"routeId": 3,
		"vesselId": 5,
		"start": "2026-08-02",
		"end": "2026-08-08",
		"selectedDays": [0, 3, 5],
		"timeSlots": [{"departure": "07:30", "arrival": "08:00"}],
		"skipDates": ["2026-08-05"],
		"fareMultiplier": 1.25
	}`

	var p SchedulePattern
	if err := json.Unmarshal([]byte(in), &p); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if p.Start.Format(DateFormat) != "2026-08-02" || p.End.Format(DateFormat) != "2026-08-08" {
		t.Fatalf("range mismatch: %v - %v", p.Start, p.End)
	}
	if p.Start.Location() != FleetLocation() {
		t.Fatalf("start parsed in %v, want fleet location", p.Start.Location())
	}
	if len(p.Days) != 3 || len(p.Slots) != 1 || len(p.SkipDates) != 1 {
		t.Fatalf("unexpected pattern contents: %+v", p)
	}
	if p.FareMult != 1.25 {
		t.Fatalf("fare multiplier = %v", p.FareMult)
	}
}

func TestSchedulePatternMarshalEmptySkips(t *testing.T) {
	p := SchedulePattern{
		RouteID:  1,
		VesselID: 1,
		Start:    time.Date(2026, time.August, 2, 0, 0, 0, 0, FleetLocation()),
		End:      time.Date(2026, time.August, 8, 0, 0, 0, 0, FleetLocation()),
	}

	out, err := json.Marshal(&p)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if strings.Contains(string(out), `"skipDates":null`) {
		t.Fatalf("skipDates should marshal as an empty list, got %s", out)
	}
	if !strings.Contains(string(out), `"start":"2026-08-02"`) {
		t.Fatalf("expected date-only start field, got %s", out)
	}
}
