package models

// Faculty represents a teaching staff member shown on the faculty page.
// Photo holds the public URL returned by the media host; a record is never
// created without one.
type Faculty struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Position        string `json:"position"`
	Qualification   string `json:"qualification"`
	Experience      string `json:"experience"`
	Specializations string `json:"specializations"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Department      string `json:"department"`
	Photo           string `json:"photo"`
}
