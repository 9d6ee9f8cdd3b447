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

// mediaFolderFaculty groups faculty photos on the remote host
const mediaFolderFaculty = "faculty"

// FacultyController handles faculty operations
type FacultyController struct {
	facultyService services.EntityService[models.Faculty]
	uploader       mediastore.Uploader
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.EntityService[models.Faculty], uploader mediastore.Uploader) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
		uploader:       uploader,
	}
}

// ListFaculty returns all faculty members
// @Summary List faculty members
// @Tags faculty
// @Produce json
// @Success 200 {object} dto.FacultyListResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /api/faculty [get]
func (c *FacultyController) ListFaculty(ctx *gin.Context) {
	items, err := c.facultyService.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list faculty")
		ctx.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "error fetching faculty members"})
		return
	}

	ctx.JSON(http.StatusOK, dto.FacultyListResponse{
		Message:     "sucess fetching the faculty data",
		FacultyData: items,
	})
}

// AddFaculty creates a faculty member from a multipart form with a photo
// file. The photo is uploaded first; only a successful upload reaches the
// store. A store failure after the upload leaves the remote object orphaned
// — there is no compensating delete.
// @Summary Add a faculty member
// @Tags faculty
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Faculty photo"
// @Success 201 {object} dto.AddFacultyResponse
// @Failure 400 {object} dto.UploadErrorResponse
// @Failure 500 {object} dto.UploadErrorResponse
// @Router /api/faculty/add [post]
func (c *FacultyController) AddFaculty(ctx *gin.Context) {
	data, filename, ok := readPhoto(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.UploadErrorResponse{Error: "No image uploaded"})
		return
	}

	req := dto.AddFacultyRequest{
		Name:            ctx.PostForm("name"),
		Position:        ctx.PostForm("position"),
		Qualification:   ctx.PostForm("qualification"),
		Experience:      ctx.PostForm("experience"),
		Specializations: ctx.PostForm("specializations"),
		Email:           ctx.PostForm("email"),
		Phone:           ctx.PostForm("phone"),
		Department:      ctx.PostForm("department"),
	}

	photoURL, err := c.uploader.Upload(ctx, data, filename, mediaFolderFaculty)
	if err != nil {
		logger.Error().Err(err).Msg("Faculty photo upload failed")
		ctx.JSON(http.StatusInternalServerError, dto.UploadErrorResponse{
			Error:  "Media upload failed",
			Detail: err.Error(),
		})
		return
	}

	created, err := c.facultyService.Create(ctx, &models.Faculty{
		Name:            req.Name,
		Position:        req.Position,
		Qualification:   req.Qualification,
		Experience:      req.Experience,
		Specializations: req.Specializations,
		Email:           req.Email,
		Phone:           req.Phone,
		Department:      req.Department,
		Photo:           photoURL,
	})
	if err != nil {
		logger.Error().Err(err).Str("photo", photoURL).Msg("Faculty create failed after upload, remote object orphaned")
		ctx.JSON(http.StatusInternalServerError, dto.UploadErrorResponse{
			Error:  "Database error",
			Detail: err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.AddFacultyResponse{
		Success:     true,
		Message:     "Faculty added successfully",
		FacultyData: *created,
	})
}

// DeleteFaculty deletes a faculty member by id. The remote photo is left in
// place.
// @Summary Delete a faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /api/faculty/delete/{id} [post]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	deleteByID(ctx, c.facultyService, "faculty member deleted success.", "error deleting faculty members")
}
