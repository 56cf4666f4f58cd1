package models

import "time"

// DefaultUserName names the owner account seeded on first launch.
const DefaultUserName = "owner"

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DisplayName string    `gorm:"not null" json:"display_name"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
