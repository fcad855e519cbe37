package types

import "time"

// Zone is a geographic grouping of islands, typically an atoll.
type Zone struct {
	ID         uint       `json:"id" gorm:"primary_key"`
	OperatorID string     `json:"-" gorm:"type:varchar;not null;primary_key;"`
	CreatedAt  time.Time  `json:"-"`
	UpdatedAt  time.Time  `json:"-"`
	DeletedAt  *time.Time `json:"-"`
	Name       string     `json:"name" binding:"required,min=2"`
	Code       string     `json:"code"`
	Desc       string     `json:"desc"`
}

type Island struct {
	ID         uint       `json:"id" gorm:"primary_key"`
	OperatorID string     `json:"-" gorm:"type:varchar;not null;primary_key;"`
	CreatedAt  time.Time  `json:"-"`
	UpdatedAt  time.Time  `json:"-"`
	DeletedAt  *time.Time `json:"-"`
	Name       string     `json:"name" binding:"required,min=2"`
	ZoneID     uint       `json:"zoneId"`
	HasDock    bool       `json:"hasDock"`
}
