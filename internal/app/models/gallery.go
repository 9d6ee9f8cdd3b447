package models

import "time"

// Gallery represents a single image in the school photo gallery.
type Gallery struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Photo       string    `json:"photo"`
	CreatedAt   time.Time `json:"createdAt"`
}
