package venues

import (
	"github.com/gin-gonic/gin"
)

func SetupVenueRoutes(router *gin.RouterGroup, controller Controller) {
	venues := router.Group("/venues")
	{
		venues.GET("", controller.ListVenues)             // GET /venues - grouped listing
		venues.POST("/search", controller.SearchVenues)   // POST /venues/search - substring search
		venues.GET("/create", controller.NewVenueForm)    // GET /venues/create - blank form shape
		venues.POST("/create", controller.CreateVenue)    // POST /venues/create - create venue
		venues.GET("/:id", controller.GetVenue)           // GET /venues/:id - detail with shows
		venues.DELETE("/:id", controller.DeleteVenue)     // DELETE /venues/:id - delete venue
		venues.GET("/:id/edit", controller.EditVenueForm) // GET /venues/:id/edit - edit form
		venues.POST("/:id/edit", controller.EditVenue)    // POST /venues/:id/edit - full overwrite
	}
}
