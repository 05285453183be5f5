package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel handles the ID (time-ordered UUID) and the creation stamp of products and orders
type BaseModel struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewBaseModel assigns a fresh UUIDv7 so IDs sort in creation order
func NewBaseModel(now time.Time) BaseModel {
	id, err := uuid.NewV7()
	if err != nil {
		// v7 only fails when the random source does
		id = uuid.New()
	}
	return BaseModel{ID: id, CreatedAt: now}
}
