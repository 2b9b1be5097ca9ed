package shows

import (
	"github.com/gin-gonic/gin"
)

func SetupShowRoutes(router *gin.RouterGroup, controller Controller) {
	shows := router.Group("/shows")
	{
		shows.GET("", controller.ListShows)          // GET /shows - all shows overview
		shows.GET("/create", controller.NewShowForm) // GET /shows/create - blank form shape
		shows.POST("/create", controller.CreateShow) // POST /shows/create - record a show
	}
}
