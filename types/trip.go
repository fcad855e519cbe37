package types

import (
	"encoding/json"
	"os"
	"time"

	"github.com/lib/pq"
)

var loc *time.Location

func init() {
	tz := os.Getenv("FERRY_TZ")
	if tz == "" {
		tz = "Indian/Maldives"
	}
	loc, _ = time.LoadLocation(tz)
}

// FleetLocation is the timezone all travel dates are interpreted in.
func FleetLocation() *time.Location {
	return loc
}

const DateFormat = "2006-01-02"

const (
	TripScheduled = "scheduled"
	TripBoarding  = "boarding"
	TripDeparted  = "departed"
	TripArrived   = "arrived"
	TripCancelled = "cancelled"
)

// Trip is a single sailing of a route on a specific date and time using a
// specific vessel.
type Trip struct {
	ID         uint       `json:"id" gorm:"primary_key"`
	OperatorID string     `json:"-" gorm:"type:varchar;not null;index"`
	CreatedAt  time.Time  `json:"-"`
	UpdatedAt  time.Time  `json:"-"`
	DeletedAt  *time.Time `json:"-"`
	RouteID    uint       `json:"routeId" binding:"required"`
	VesselID   uint       `json:"vesselId" binding:"required"`
	TravelDate time.Time  `json:"-"`
	Departure  string     `json:"departure"`
	Arrival    string     `json:"arrival"`
	Status     string     `json:"status" gorm:"default:'scheduled'"`
	FareMult   float64    `json:"fareMultiplier" gorm:"default:1"`
}

func (t *Trip) UnmarshalJSON(data []byte) (err error) {
	type Alias Trip
	aux := &struct {
		*Alias
		TravelDay string `json:"travelDate"`
	}{
		Alias: (*Alias)(t),
	}

	if err = json.Unmarshal(data, &aux); err != nil {
		return
	}

	if aux.TravelDay != "" {
		if t.TravelDate, err = time.ParseInLocation(DateFormat, aux.TravelDay, loc); err != nil {
			return
		}
	}
	return
}

// MarshalJSON handles the proper date formatting for trips
func (t *Trip) MarshalJSON() ([]byte, error) {
	type Alias Trip
	return json.Marshal(&struct {
		*Alias
		TravelDay string `json:"travelDate"`
	}{
		Alias:     (*Alias)(t),
		TravelDay: t.TravelDate.Format(DateFormat),
	})
}

// TimeSlot is one departure/arrival pair a schedule pattern repeats on
// every generated day.
type TimeSlot struct {
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
}

// SchedulePattern describes a bulk trip generation request: a date range
// crossed with selected weekdays and time slots, minus skipped dates.
type SchedulePattern struct {
	RouteID   uint           `json:"routeId"`
	VesselID  uint           `json:"vesselId"`
	Start     time.Time      `json:"-"`
	End       time.Time      `json:"-"`
	Days      pq.Int64Array  `json:"selectedDays" gorm:"type:integer[]"`
	Slots     []TimeSlot     `json:"timeSlots"`
	SkipDates pq.StringArray `json:"skipDates" gorm:"type:text[]"`
	FareMult  float64        `json:"fareMultiplier"`
}

func (s *SchedulePattern) UnmarshalJSON(data []byte) (err error) {
	type Alias SchedulePattern
	aux := &struct {
		*Alias
		StartDay string `json:"start"`
		EndDay   string `json:"end"`
	}{
		Alias: (*Alias)(s),
	}

	if err = json.Unmarshal(data, &aux); err != nil {
		return
	}

	if s.Start, err = time.ParseInLocation(DateFormat, aux.StartDay, loc); err != nil {
		return
	}
	if s.End, err = time.ParseInLocation(DateFormat, aux.EndDay, loc); err != nil {
		return
	}
	return
}

func (s *SchedulePattern) MarshalJSON() ([]byte, error) {
	type Alias SchedulePattern
	if s.SkipDates == nil {
		s.SkipDates = make(pq.StringArray, 0)
	}
	return json.Marshal(&struct {
		*Alias
		StartDay string `json:"start"`
		EndDay   string `json:"end"`
	}{
		Alias:    (*Alias)(s),
		StartDay: s.Start.Format(DateFormat),
		EndDay:   s.End.Format(DateFormat),
	})
}
