package models

import "time"

// User is an administrative account. The password column holds a scrypt
// derivation in "hexhash.hexsalt" form, never the plain text.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:255;not null;uniqueIndex" json:"username"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}
