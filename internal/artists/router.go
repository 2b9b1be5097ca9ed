package artists

import (
	"github.com/gin-gonic/gin"
)

func SetupArtistRoutes(router *gin.RouterGroup, controller Controller) {
	artists := router.Group("/artists")
	{
		artists.GET("", controller.ListArtists)             // GET /artists - full listing
		artists.POST("/search", controller.SearchArtists)   // POST /artists/search - substring search
		artists.GET("/create", controller.NewArtistForm)    // GET /artists/create - blank form shape
		artists.POST("/create", controller.CreateArtist)    // POST /artists/create - create artist
		artists.GET("/:id", controller.GetArtist)           // GET /artists/:id - detail with shows
		artists.GET("/:id/edit", controller.EditArtistForm) // GET /artists/:id/edit - edit form
		artists.POST("/:id/edit", controller.EditArtist)    // POST /artists/:id/edit - full overwrite
	}
}
