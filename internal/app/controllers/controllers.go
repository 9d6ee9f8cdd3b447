package controllers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/adarsh/schoolsite/internal/app/models/dto"
	"github.com/adarsh/schoolsite/internal/app/services"
	"github.com/adarsh/schoolsite/internal/pkg/logger"
)

const photoFormField = "photo"

// readPhoto pulls the uploaded image fully into memory. It is never written
// to local disk; the bytes go straight to the media host.
func readPhoto(ctx *gin.Context) (data []byte, filename string, ok bool) {
	fileHeader, err := ctx.FormFile(photoFormField)
	if err != nil {
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to open uploaded file")
		return nil, "", false
	}
	defer file.Close()

	data, err = io.ReadAll(file)
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("Failed to read uploaded file")
		return nil, "", false
	}

	return data, fileHeader.Filename, true
}

// bindDeleteID reads the target id from the JSON body, falling back to the
// path parameter when the body carries none.
func bindDeleteID(ctx *gin.Context) (int64, bool) {
	var req dto.DeleteRequest
	if err := ctx.ShouldBindJSON(&req); err == nil && req.ID > 0 {
		return req.ID, true
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// deleteByID implements the shared delete flow: probe existence first, then
// delete. The probe is not an optimization — an already-absent id answers
// 400 with a different body than a successful delete, and that distinction
// is part of the API contract.
func deleteByID[T any](ctx *gin.Context, svc services.EntityService[T], deletedMsg, errorMsg string) {
	id, ok := bindDeleteID(ctx)
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "failed to delete data."})
		return
	}

	exists, err := svc.Exists(ctx, id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: errorMsg})
		return
	}
	if !exists {
		ctx.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "failed to delete data."})
		return
	}

	if err := svc.Delete(ctx, id); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: errorMsg})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: deletedMsg})
}
