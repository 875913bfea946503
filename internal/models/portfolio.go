package models

// Portfolio is a user's single current position. TotalValue and InvestedAmount
// move together on deposits and round-ups; on withdrawal InvestedAmount clamps
// at zero independently, so the two figures may diverge after repeated
// withdrawals below the invested basis. FundID is nil until the first
// investment.
type Portfolio struct {
	UserID         string  `gorm:"primaryKey" json:"user_id"`
	TotalValue     float64 `gorm:"not null;default:0" json:"total_value"`
	InvestedAmount float64 `gorm:"not null;default:0" json:"invested_amount"`
	Last24hChange  float64 `gorm:"column:last_24hr_change;not null;default:0" json:"last_24hr_change_percent"`
	FundID         *string `json:"fund_id,omitempty"`
}
