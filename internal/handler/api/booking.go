package api

import (
	"errors"
	"net/http"

	"parkspot/internal/domain/booking"
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

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book a spot for a time span on a date
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	driverID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreateBooking(c.Request.Context(), req, driverID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSpotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Spot not found", nil)
		case errors.Is(err, errs.ErrSpotInactive):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Spot is not active", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking data", nil)
		case errors.Is(err, errs.ErrNotAvailableOnDay):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Spot is not available on that day", nil)
		case errors.Is(err, errs.ErrOutsideOperatingHours):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Requested time is outside operating hours", nil)
		case errors.Is(err, errs.ErrSlotConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is already booked", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List the authenticated user's bookings, optionally filtered by status
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending, confirmed, cancelled)"
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	var status *string
	if raw := c.Query("status"); raw != "" {
		switch booking.Status(raw) {
		case booking.StatusPending, booking.StatusConfirmed, booking.StatusCancelled:
			status = &raw
		default:
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("invalid status"), "Invalid status filter", nil)
			return
		}
	}

	views, err := h.q.ListByUser(c.Request.Context(), userID, status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Description Get one of the authenticated user's bookings by ID
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, errs.ErrNotBookingOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not the booking owner", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Cancel one of the authenticated user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	if err := h.cmds.CancelBooking(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, errs.ErrNotBookingOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not the booking owner", nil)
		case errors.Is(err, booking.ErrAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking is already cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
