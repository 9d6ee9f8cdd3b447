package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adarsh/schoolsite/internal/app/models"
	"github.com/adarsh/schoolsite/internal/app/models/dto"
	"github.com/adarsh/schoolsite/internal/app/services"
	"github.com/adarsh/schoolsite/internal/pkg/logger"
	"github.com/adarsh/schoolsite/internal/pkg/mediastore"
)

// mediaFolderGallery groups gallery photos on the remote host
const mediaFolderGallery = "gallery"

// GalleryController handles gallery operations
type GalleryController struct {
	galleryService services.EntityService[models.Gallery]
	uploader       mediastore.Uploader
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService services.EntityService[models.Gallery], uploader mediastore.Uploader) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
		uploader:       uploader,
	}
}

// ListGallery returns all gallery images
// @Summary List gallery images
// @Tags gallery
// @Produce json
// @Success 200 {object} dto.GalleryListResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /api/gallery [get]
func (c *GalleryController) ListGallery(ctx *gin.Context) {
	items, err := c.galleryService.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list gallery")
		ctx.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "error fetching gallery data"})
		return
	}

	ctx.JSON(http.StatusOK, dto.GalleryListResponse{
		Message:     "sucess fetching the gallery data",
		GalleryData: items,
	})
}

// AddGallery creates a gallery image from a multipart form with a photo
// file. Upload precedes the store write; a store failure afterwards leaves
// the remote object orphaned.
// @Summary Add a gallery image
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Gallery photo"
// @Success 201 {object} dto.AddGalleryResponse
// @Failure 400 {object} dto.UploadErrorResponse
// @Failure 500 {object} dto.UploadErrorResponse
// @Router /api/gallery/add [post]
func (c *GalleryController) AddGallery(ctx *gin.Context) {
	data, filename, ok := readPhoto(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.UploadErrorResponse{Error: "No image uploaded"})
		return
	}

	req := dto.AddGalleryRequest{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
	}

	photoURL, err := c.uploader.Upload(ctx, data, filename, mediaFolderGallery)
	if err != nil {
		logger.Error().Err(err).Msg("Gallery photo upload failed")
		ctx.JSON(http.StatusInternalServerError, dto.UploadErrorResponse{
			Error:  "Media upload failed",
			Detail: err.Error(),
		})
		return
	}

	created, err := c.galleryService.Create(ctx, &models.Gallery{
		Title:       req.Title,
		Description: req.Description,
		Photo:       photoURL,
	})
	if err != nil {
		logger.Error().Err(err).Str("photo", photoURL).Msg("Gallery create failed after upload, remote object orphaned")
		ctx.JSON(http.StatusInternalServerError, dto.UploadErrorResponse{
			Error:  "Database error",
			Detail: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddGalleryResponse{
		Success:     true,
		Message:     "gallery added successfully",
		GalleryData: *created,
	})
}

// DeleteGallery deletes a gallery image by id
// @Summary Delete a gallery image
// @Tags gallery
// @Accept json
// @Produce json
// @Param id path int true "Gallery ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /api/gallery/delete/{id} [post]
func (c *GalleryController) DeleteGallery(ctx *gin.Context) {
	deleteByID(ctx, c.galleryService, "gallery data deleted success.", "error deleting gallery data")
}
