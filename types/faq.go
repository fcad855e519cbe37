package types

import "time"

type FAQCategory struct {
	ID         uint       `json:"id" gorm:"primary_key"`
	OperatorID string     `json:"-" gorm:"type:varchar;not null;primary_key;"`
	CreatedAt  time.Time  `json:"-"`
	UpdatedAt  time.Time  `json:"-"`
	DeletedAt  *time.Time `json:"-"`
	Name       string     `json:"name" binding:"required,min=2"`
	SortOrder  int        `json:"sortOrder"`
}

type FAQ struct {
	ID         uint       `json:"id" gorm:"primary_key"`
	OperatorID string     `json:"-" gorm:"type:varchar;not null;primary_key;"`
	CreatedAt  time.Time  `json:"-"`
	UpdatedAt  time.Time  `json:"-"`
	DeletedAt  *time.Time `json:"-"`
	CategoryID uint       `json:"categoryId"`
	Question   string     `json:"question" binding:"required,min=5"`
	Answer     string     `json:"answer"`
	SortOrder  int        `json:"sortOrder"`
	Published  bool       `json:"published"`
}
