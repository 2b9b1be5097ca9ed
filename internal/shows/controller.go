package shows

import (
	"net/http"

	"stagebook/internal/shared/utils/response"
	"stagebook/pkg/logger"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	ListShows(c *gin.Context)
	NewShowForm(c *gin.Context)
	CreateShow(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) ListShows(c *gin.Context) {
	shows, err := ctrl.service.ListShows(c.Request.Context())
	if err != nil {
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Shows retrieved successfully", shows, nil)
}

func (ctrl *controller) NewShowForm(c *gin.Context) {
	form := FormResponse{
		Fields: []string{"artist_id", "venue_id", "start_time"},
	}
	response.RespondJSON(c, "success", http.StatusOK, "New show form", form, nil)
}

func (ctrl *controller) CreateShow(c *gin.Context) {
	var req CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Please try again! Show could not be added", nil, err.Error())
		return
	}

	show, err := ctrl.service.CreateShow(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	logger.GetDefault().LogRecordCreated(c.Request.Context(), "show", show.ID, show.StartTime)
	response.RespondJSON(c, "success", http.StatusCreated, "Show was successfully added!", show, nil)
}
