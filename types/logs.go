package types

import (
	"github.com/jinzhu/gorm"
	"github.com/jinzhu/gorm/dialects/postgres"
)

// LogAction is one audited admin mutation: who changed what, with the raw
// request payload kept for dispute resolution.
type LogAction struct {
	gorm.Model
	OperatorID string         `json:"operatorId" gorm:"index"`
	UserID     string         `json:"userId"`
	Method     string         `json:"method"`
	Url        string         `json:"url"`
	Payload    postgres.Jsonb `json:"payload"`
}
