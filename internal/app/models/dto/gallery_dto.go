package dto

import "github.com/adarsh/schoolsite/internal/app/models"

// AddGalleryRequest carries the multipart form fields of a new gallery
// image; the photo file is read separately.
type AddGalleryRequest struct {
	Title       string `form:"title"`
	Description string `form:"description"`
}

// GalleryListResponse is the GET /api/gallery envelope
type GalleryListResponse struct {
	Message     string           `json:"message"`
	GalleryData []models.Gallery `json:"galleryData"`
}

// AddGalleryResponse is the POST /api/gallery/add envelope
type AddGalleryResponse struct {
	Success     bool           `json:"success"`
	Message     string         `json:"message"`
	GalleryData models.Gallery `json:"galleryData"`
}
