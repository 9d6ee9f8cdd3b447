package dto

import "github.com/adarsh/schoolsite/internal/app/models"

// AddNewsRequest carries the fields of a new news entry. Nothing is
// enforced server side beyond NOT NULL columns; category and type stay
// free-form.
type AddNewsRequest struct {
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Featured bool   `json:"featured"`
}

// NewsListResponse is the GET /api/news envelope
type NewsListResponse struct {
	NewsData []models.News `json:"newsData"`
}

// AddNewsData wraps the created record under the addNews key
type AddNewsData struct {
	AddNews models.News `json:"addNews"`
}

// AddNewsResponse is the POST /api/news/add envelope
type AddNewsResponse struct {
	Message string      `json:"message"`
	Data    AddNewsData `json:"data"`
}
