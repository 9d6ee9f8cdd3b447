package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adarsh/schoolsite/internal/app/models"
	"github.com/adarsh/schoolsite/internal/app/models/dto"
	"github.com/adarsh/schoolsite/internal/app/services"
	"github.com/adarsh/schoolsite/internal/pkg/logger"
)

// NewsController handles news operations
type NewsController struct {
	newsService services.EntityService[models.News]
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.EntityService[models.News]) *NewsController {
	return &NewsController{newsService: newsService}
}

// ListNews returns all news entries
// @Summary List news
// @Tags news
// @Produce json
// @Success 200 {object} dto.NewsListResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /api/news [get]
func (c *NewsController) ListNews(ctx *gin.Context) {
	items, err := c.newsService.List(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list news")
		ctx.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "failed to fetch data"})
		return
	}

	ctx.JSON(http.StatusOK, dto.NewsListResponse{NewsData: items})
}

// AddNews creates a news entry
// @Summary Add a news entry
// @Tags news
// @Accept json
// @Produce json
// @Param request body dto.AddNewsRequest true "News fields"
// @Success 200 {object} dto.AddNewsResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /api/news/add [post]
func (c *NewsController) AddNews(ctx *gin.Context) {
	var req dto.AddNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Error while adding news"})
		return
	}

	created, err := c.newsService.Create(ctx, &models.News{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Category: req.Category,
		Type:     req.Type,
		Featured: req.Featured,
	})
	if err != nil {
		logger.Error().Err(err).Msg("Failed to add news")
		ctx.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Error while adding news"})
		return
	}

	ctx.JSON(http.StatusOK, dto.AddNewsResponse{
		Message: "News created !",
		Data:    dto.AddNewsData{AddNews: *created},
	})
}

// DeleteNews deletes a news entry by id
// @Summary Delete a news entry
// @Tags news
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.MessageResponse
// @Failure 500 {object} dto.MessageResponse
// @Router /api/news/delete/{id} [post]
func (c *NewsController) DeleteNews(ctx *gin.Context) {
	deleteByID(ctx, c.newsService, "news deleted success.", "error deleting news")
}
