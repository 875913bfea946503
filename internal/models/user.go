package models

import "time"

// RiskProfile is a user-selected risk tier that drives fund recommendation.
type RiskProfile string

const (
	RiskConservative RiskProfile = "Conservative"
	RiskModerate     RiskProfile = "Moderate"
	RiskAggressive   RiskProfile = "Aggressive"
)

// Valid reports whether p is one of the three recognized tiers.
func (p RiskProfile) Valid() bool {
	switch p {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	}
	return false
}

// User represents a registered account holder. Users are created once at
// registration and never mutated or deleted.
type User struct {
	ID           string      `gorm:"primaryKey" json:"user_id"`
	Username     string      `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string      `gorm:"not null" json:"-"`
	RiskProfile  RiskProfile `gorm:"not null" json:"risk_profile"`
	CreatedAt    time.Time   `json:"created_at"`
}
