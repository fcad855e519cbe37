package types

import "time"

// Translation is a single localized string keyed by a dot.path the client
// apps look up at render time.
type Translation struct {
	OperatorID string    `json:"-" gorm:"type:varchar;not null;primary_key"`
	Key        string    `json:"key" gorm:"primary_key" binding:"required"`
	Locale     string    `json:"locale" gorm:"primary_key" binding:"required"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Value      string    `json:"value"`
}
