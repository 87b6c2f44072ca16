package models

import (
	"time"
)

// Click is one recorded visit to a short link. Clicks are immutable and are
// not removed when their link is deleted; aggregation always joins through
// the link id, so orphaned rows are simply never queried again.
type Click struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LinkID    uint      `gorm:"index;not null" json:"linkId"`
	ClickedAt time.Time `json:"clickedAt"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	Referrer  string    `json:"referrer"`
}
