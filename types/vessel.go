package types

import (
	"time"

	"github.com/jinzhu/gorm/dialects/postgres"
)

const (
	VesselInService   = "in_service"
	VesselMaintenance = "maintenance"
	VesselRetired     = "retired"
)

// Vessel is a physical ferry unit. SeatLayout holds the client's seat map
// (rows, columns, labels) as an opaque JSON blob; the server only enforces
// Capacity.
type Vessel struct {
	ID               uint           `json:"id" gorm:"primary_key"`
	OperatorID       string         `json:"-" gorm:"type:varchar;not null;primary_key;"`
	CreatedAt        time.Time      `json:"-"`
	UpdatedAt        time.Time      `json:"-"`
	DeletedAt        *time.Time     `json:"-"`
	Name             string         `json:"name" binding:"required,min=2"`
	Capacity         uint           `json:"capacity"`
	Color            string         `json:"color"`
	SeatLayout       postgres.Jsonb `json:"seatLayout"`
	Status           string         `json:"status" gorm:"default:'in_service'"`
	MaintenanceStart string         `json:"maintenanceStart"`
	MaintenanceEnd   string         `json:"maintenanceEnd"`
}
