package models

import (
	"time"
)

type Link struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	LongURL   string    `gorm:"not null" json:"longUrl"`
	ShortCode string    `gorm:"index;not null" json:"shortCode"`
	ShortURL  string    `json:"shortUrl"`
	CreatedAt time.Time `json:"createdAt"`

	// Computed on read, never stored
	Clicks         int64 `gorm:"-" json:"clicks"`
	UniqueVisitors int64 `gorm:"-" json:"uniqueVisitors"`
}
