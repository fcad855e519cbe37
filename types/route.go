package types

import "time"

// Route is a scheduled ferry path between two islands. BaseFare is the
// per-seat price before any trip fare multiplier is applied.
type Route struct {
	ID         uint       `json:"id" gorm:"primary_key"`
	OperatorID string     `json:"-" gorm:"type:varchar;not null;primary_key;"`
	CreatedAt  time.Time  `json:"-"`
	UpdatedAt  time.Time  `json:"-"`
	DeletedAt  *time.Time `json:"-"`
	Name       string     `json:"name" binding:"required,min=2"`
	OriginID   uint       `json:"originId" binding:"required"`
	DestID     uint       `json:"destId" binding:"required"`
	BaseFare   float64    `json:"baseFare"`
	DistanceKM float64    `json:"distanceKm"`
	Duration   uint       `json:"durationMin"`
	Status     string     `json:"status" gorm:"default:'active'"`
}

const (
	RouteActive    = "active"
	RouteSuspended = "suspended"
)
