package model

import (
	"github.com/google/uuid"
)

type FaqEntry struct {
	Id       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Question string    `gorm:"type:text;not null"`
	Answer   string    `gorm:"type:text;not null"`
}

func (FaqEntry) TableName() string {
	return "faq"
}
