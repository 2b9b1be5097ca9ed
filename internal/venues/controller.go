package venues

import (
	"net/http"
	"strconv"

	"stagebook/internal/shared/genres"
	"stagebook/internal/shared/utils/response"
	"stagebook/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	ListVenues(c *gin.Context)
	SearchVenues(c *gin.Context)
	GetVenue(c *gin.Context)
	NewVenueForm(c *gin.Context)
	CreateVenue(c *gin.Context)
	EditVenueForm(c *gin.Context)
	EditVenue(c *gin.Context)
	DeleteVenue(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

var venueFormFields = []string{
	"name", "city", "state", "address", "phone", "genres",
	"image_link", "facebook_link", "website", "seeking_talent", "seeking_description",
}

func (ctrl *controller) ListVenues(c *gin.Context) {
	groups, err := ctrl.service.ListGrouped(c.Request.Context())
	if err != nil {
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venues retrieved successfully", groups, nil)
}

func (ctrl *controller) SearchVenues(c *gin.Context) {
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

func (ctrl *controller) GetVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid venue id", nil, err.Error())
		return
	}

	venue, err := ctrl.service.GetVenue(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venue retrieved successfully", venue, nil)
}

func (ctrl *controller) NewVenueForm(c *gin.Context) {
	form := FormResponse{
		Fields: venueFormFields,
		Genres: genres.Choices,
	}
	response.RespondJSON(c, "success", http.StatusOK, "New venue form", form, nil)
}

func (ctrl *controller) CreateVenue(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest,
			"An error occurred. Venue "+req.Name+" could not be listed!", nil, err.Error())
		return
	}

	venue, err := ctrl.service.CreateVenue(c.Request.Context(), req)
	if err != nil {
		response.RespondJSON(c, "error", response.StatusFor(err),
			"An error occurred. Venue "+req.Name+" could not be listed!", nil, err.Error())
		return
	}

	logger.GetDefault().LogRecordCreated(c.Request.Context(), "venue", venue.ID, venue.Name)
	response.RespondJSON(c, "success", http.StatusCreated,
		"Venue "+venue.Name+" was successfully listed!", venue, nil)
}

func (ctrl *controller) EditVenueForm(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid venue id", nil, err.Error())
		return
	}

	venue, err := ctrl.service.GetVenueRecord(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	form := FormResponse{
		Fields: venueFormFields,
		Genres: genres.Choices,
		Venue:  venue,
	}
	response.RespondJSON(c, "success", http.StatusOK, "Edit venue form", form, nil)
}

func (ctrl *controller) EditVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid venue id", nil, err.Error())
		return
	}

	var req EditVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest,
			"Venue "+req.Name+" was not successfully edited!", nil, err.Error())
		return
	}

	venue, err := ctrl.service.EditVenue(c.Request.Context(), id, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK,
		"Venue "+venue.Name+" was successfully edited!", venue, nil)
}

func (ctrl *controller) DeleteVenue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid venue id", nil, err.Error())
		return
	}

	cascade, _ := strconv.ParseBool(c.DefaultQuery("cascade", "false"))

	if err := ctrl.service.DeleteVenue(c.Request.Context(), id, cascade); err != nil {
		response.RespondError(c, err)
		return
	}

	logger.GetDefault().LogRecordDeleted(c.Request.Context(), "venue", id.String())
	response.RespondJSON(c, "success", http.StatusOK, "Venue deleted successfully", nil, nil)
}
