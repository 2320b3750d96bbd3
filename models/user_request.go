package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRequest is one entry of a user's activity log.
type UserRequest struct {
	Id     uuid.UUID `json:"id"`
	Method string    `json:"method"`
	Route  string    `json:"route"`
	Time   time.Time `json:"time"`
}
