// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered account. Username is immutable after
// creation; DisplayName, Image and Bio are the mutable profile fields.
// The password hash is never serialized to clients.
type User struct {
	UserID         uint      `gorm:"primaryKey" json:"userId"`
	Username       string    `gorm:"unique;not null" json:"username"`
	HashedPassword string    `gorm:"not null" json:"-"`
	DisplayName    *string   `json:"displayName"`
	Image          *string   `json:"image"`
	Bio            *string   `json:"bio"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"-"`
	Posts          []Post    `gorm:"foreignKey:UserID" json:"-"`
}
