package models

import "time"

// AuthToken maps an opaque bearer token to its owning user. A user may hold
// any number of live tokens; tokens never expire and are never revoked.
type AuthToken struct {
	Token     string    `gorm:"primaryKey" json:"token"`
	UserID    string    `gorm:"index;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
