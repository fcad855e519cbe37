package types

import "github.com/jinzhu/gorm/dialects/postgres"

// FareCategory holds the name of a price structure and the mapping of
// passenger categories (adult, child, senior) to prices for it
type FareCategory struct {
	Name       string          `json:"name" gorm:"primary_key"`
	OperatorID string          `json:"-" gorm:"type:varchar;not null;primary_key"`
	Categories postgres.Hstore `json:"categories"`
}
