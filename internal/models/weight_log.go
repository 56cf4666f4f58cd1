package models

import "time"

// MaxWeightKg is the sanity ceiling for a single measurement.
const MaxWeightKg = 500.0

type WeightLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_weight_user_date" json:"user_id"`
	Date      time.Time `gorm:"type:date;not null;index:idx_weight_user_date" json:"date"`
	WeightKg  float64   `gorm:"not null" json:"weight_kg"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
