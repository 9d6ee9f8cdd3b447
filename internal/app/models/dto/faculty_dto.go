package dto

import "github.com/adarsh/schoolsite/internal/app/models"

// AddFacultyRequest carries the multipart form fields of a new faculty
// member. The photo file itself is read separately; fields are required at
// the client but not enforced here.
type AddFacultyRequest struct {
	Name            string `form:"name"`
	Position        string `form:"position"`
	Qualification   string `form:"qualification"`
	Experience      string `form:"experience"`
	Specializations string `form:"specializations"`
	Email           string `form:"email"`
	Phone           string `form:"phone"`
	Department      string `form:"department"`
}

// FacultyListResponse is the GET /api/faculty envelope
type FacultyListResponse struct {
	Message     string           `json:"message"`
	FacultyData []models.Faculty `json:"facultyData"`
}

// AddFacultyResponse is the POST /api/faculty/add envelope
type AddFacultyResponse struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message"`
	FacultyData models.Faculty `json:"facultyData"`
}
