package entity

import (
	"github.com/google/uuid"
)

type FaqEntry struct {
	Id       uuid.UUID
	Question string
	Answer   string
}
