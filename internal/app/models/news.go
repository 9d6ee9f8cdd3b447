package models

import "time"

// News represents a news or notice entry published on the site.
// Category and Type are free-form at the data layer; the client treats
// category "notice" (case-insensitive) as an urgent announcement.
type News struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Category  string    `json:"category"`
	Type      string    `json:"type"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"createdAt"`
}
