package models

import "time"

// Post is a short text post with an optional image. Username, DisplayName
// and Avatar are a snapshot of the author taken at creation time; they are
// deliberately not kept in sync with later profile edits.
type Post struct {
	PostID      uint      `gorm:"primaryKey" json:"postId"`
	UserID      uint      `gorm:"not null;index" json:"userId"`
	Username    string    `gorm:"not null" json:"username"`
	DisplayName *string   `json:"displayName"`
	Avatar      *string   `json:"avatar"`
	TextContent string    `gorm:"type:text;not null" json:"textContent"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}
