package models

import (
	"time"
)

// BaseModel provides audit timestamps shared by all intake tables
type BaseModel struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
