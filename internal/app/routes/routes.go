package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adarsh/schoolsite/internal/app/controllers"
)

// SetupRouter configures all application routes. Paths are flat under /api
// with POST used for mutations, matching what the site's pages call.
func SetupRouter(
	router *gin.Engine,
	newsController *controllers.NewsController,
	facultyController *controllers.FacultyController,
	galleryController *controllers.GalleryController,
) {
	news := router.Group("/api/news")
	{
		news.GET("", newsController.ListNews)
		news.POST("/add", newsController.AddNews)
		news.POST("/delete/:id", newsController.DeleteNews)
	}

	faculty := router.Group("/api/faculty")
	{
		faculty.GET("", facultyController.ListFaculty)
		faculty.POST("/add", facultyController.AddFaculty)
		faculty.POST("/delete/:id", facultyController.DeleteFaculty)
	}

	gallery := router.Group("/api/gallery")
	{
		gallery.GET("", galleryController.ListGallery)
		gallery.POST("/add", galleryController.AddGallery)
		gallery.POST("/delete/:id", galleryController.DeleteGallery)
	}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "hi from the backend")
	})
}
