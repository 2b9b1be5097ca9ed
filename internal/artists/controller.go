package artists

import (
	"net/http"

	"stagebook/internal/shared/genres"
	"stagebook/internal/shared/utils/response"
	"stagebook/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	ListArtists(c *gin.Context)
	SearchArtists(c *gin.Context)
	GetArtist(c *gin.Context)
	NewArtistForm(c *gin.Context)
	CreateArtist(c *gin.Context)
	EditArtistForm(c *gin.Context)
	EditArtist(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

var artistFormFields = []string{
	"name", "city", "state", "phone", "genres",
	"image_link", "facebook_link", "website", "seeking_venue", "seeking_description",
}

func (ctrl *controller) ListArtists(c *gin.Context) {
	artists, err := ctrl.service.ListArtists(c.Request.Context())
	if err != nil {
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Artists retrieved successfully", artists, nil)
}

func (ctrl *controller) SearchArtists(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := ctrl.service.Search(c.Request.Context(), req.SearchTerm)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Search completed", result, nil)
}

func (ctrl *controller) GetArtist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid artist id", nil, err.Error())
		return
	}

	artist, err := ctrl.service.GetArtist(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Artist retrieved successfully", artist, nil)
}

func (ctrl *controller) NewArtistForm(c *gin.Context) {
	form := FormResponse{
		Fields: artistFormFields,
		Genres: genres.Choices,
	}
	response.RespondJSON(c, "success", http.StatusOK, "New artist form", form, nil)
}

func (ctrl *controller) CreateArtist(c *gin.Context) {
	var req CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest,
			"An error occurred. Artist "+req.Name+" could not be added", nil, err.Error())
		return
	}

	artist, err := ctrl.service.CreateArtist(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", response.StatusFor(err),
			"An error occurred. Artist "+req.Name+" could not be added", nil, err.Error())
		return
	}

	logger.GetDefault().LogRecordCreated(c.Request.Context(), "artist", artist.ID, artist.Name)
	response.RespondJSON(c, "success", http.StatusCreated,
		"Artist "+artist.Name+" was successfully listed!", artist, nil)
}

func (ctrl *controller) EditArtistForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid artist id", nil, err.Error())
		return
	}

	artist, err := ctrl.service.GetArtistRecord(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	form := FormResponse{
		Fields: artistFormFields,
		Genres: genres.Choices,
		Artist: artist,
	}
	response.RespondJSON(c, "success", http.StatusOK, "Edit artist form", form, nil)
}

func (ctrl *controller) EditArtist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid artist id", nil, err.Error())
		return
	}

	var req EditArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest,
			"Please try again Artist "+req.Name+" was unsuccessfully edited!", nil, err.Error())
		return
	}

	artist, err := ctrl.service.EditArtist(c.Request.Context(), id, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK,
		"Artist "+artist.Name+" was successfully edited!", artist, nil)
}
