package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/handler/httperr"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/commands"
	"parkspot/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpotHandler struct {
	cmds         commands.SpotCommands
	q            queries.SpotQueries
	availability queries.AvailabilityQueries
}

func NewSpotHandler(cmds commands.SpotCommands, q queries.SpotQueries, availability queries.AvailabilityQueries) *SpotHandler {
	return &SpotHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary Create parking spot
// @Description Register a new parking spot owned by the authenticated host
// @Tags spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSpotRequest true "Create spot request"
// @Success 201 {object} resdto.SpotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /spots [post]
func (h *SpotHandler) Create(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateSpotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreateSpot(c.Request.Context(), req, hostID)
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid spot data", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromSpotView(view))
}

// @Summary List parking spots
// @Description List active parking spots, optionally filtered by city and max price
// @Tags spots
// @Produce json
// @Param city query string false "Filter by city"
// @Param max_price query number false "Maximum price per hour"
// @Success 200 {array} resdto.SpotResponse
// @Router /spots [get]
func (h *SpotHandler) List(c *gin.Context) {
	var filters queries.SpotFilters
	if city := c.Query("city"); city != "" {
		filters.City = &city
	}
	if raw := c.Query("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid max_price", nil)
			return
		}
		filters.MaxPrice = &maxPrice
	}

	views, err := h.q.List(c.Request.Context(), filters)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotViews(views))
}

// @Summary Get parking spot
// @Description Get a parking spot by ID
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {object} resdto.SpotResponse
// @Failure 404 {object} map[string]string
// @Router /spots/{id} [get]
func (h *SpotHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid spot ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrSpotNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Spot not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpotView(view))
}

// @Summary Set operating hours
// @Description Replace the spot's weekly operating schedule
// @Tags spots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Param request body reqdto.SetOperatingHoursRequest true "Operating hours"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spots/{id}/operating-hours [put]
func (h *SpotHandler) SetOperatingHours(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid spot ID format", nil)
		return
	}
	var req reqdto.SetOperatingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.SetOperatingHours(c.Request.Context(), id, hostID, req); err != nil {
		switch {
		case errors.Is(err, errs.ErrSpotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Spot not found", nil)
		case errors.Is(err, errs.ErrNotSpotOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not the spot owner", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid operating hours", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get operating hours
// @Description List the spot's weekly operating schedule
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Success 200 {array} queries.OperatingIntervalView
// @Failure 404 {object} map[string]string
// @Router /spots/{id}/operating-hours [get]
func (h *SpotHandler) GetOperatingHours(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid spot ID format", nil)
		return
	}

	intervals, err := h.q.OperatingHours(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrSpotNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Spot not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	if intervals == nil {
		intervals = []queries.OperatingIntervalView{}
	}
	c.JSON(http.StatusOK, intervals)
}

// @Summary Spot availability
// @Description Compute the free slots of a spot on a date
// @Tags spots
// @Produce json
// @Param id path string true "Spot ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spots/{id}/availability [get]
func (h *SpotHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid spot ID format", nil)
		return
	}
	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("date is required"), "date query parameter is required", nil)
		return
	}

	view, err := h.availability.ForDate(c.Request.Context(), id, date)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		case errors.Is(err, errs.ErrSpotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Spot not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayAvailabilityView(view))
}

// @Summary Deactivate parking spot
// @Description Soft delete: the spot stops accepting bookings
// @Tags spots
// @Produce json
// @Security BearerAuth
// @Param id path string true "Spot ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /spots/{id} [delete]
func (h *SpotHandler) Deactivate(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid spot ID format", nil)
		return
	}

	if err := h.cmds.Deactivate(c.Request.Context(), id, hostID); err != nil {
		switch {
		case errors.Is(err, errs.ErrSpotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Spot not found", nil)
		case errors.Is(err, errs.ErrNotSpotOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not the spot owner", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
