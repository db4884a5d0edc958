package api

import (
	"errors"
	"net/http"

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

type PostingHandler struct {
	cmds commands.PostingCommands
	q    queries.PostingQueries
}

func NewPostingHandler(cmds commands.PostingCommands, q queries.PostingQueries) *PostingHandler {
	return &PostingHandler{cmds: cmds, q: q}
}

// @Summary Create posting
// @Description Publish a reservable time fragment on an owned spot
// @Tags postings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePostingRequest true "Create posting request"
// @Success 201 {object} resdto.PostingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /postings [post]
func (h *PostingHandler) Create(c *gin.Context) {
	hostID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreatePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreatePosting(c.Request.Context(), req, hostID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSpotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Spot not found", nil)
		case errors.Is(err, errs.ErrNotSpotOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not the spot owner", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid posting data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPostingView(view))
}

// @Summary List open postings
// @Description List a spot's unreserved postings for a date
// @Tags postings
// @Produce json
// @Param spot_id query string true "Spot ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.PostingResponse
// @Failure 400 {object} map[string]string
// @Router /postings [get]
func (h *PostingHandler) List(c *gin.Context) {
	spotID, err := uuid.Parse(c.Query("spot_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid spot_id", nil)
		return
	}
	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("date is required"), "date query parameter is required", nil)
		return
	}

	views, err := h.q.ListOpenBySpot(c.Request.Context(), spotID, date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPostingViews(views))
}

// @Summary Reserve posting
// @Description Reserve a span inside an open posting. Leftover minutes reappear as new postings.
// @Tags postings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Posting ID"
// @Param request body reqdto.ReservePostingRequest true "Span to reserve"
// @Success 200 {object} resdto.PostingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /postings/{id}/reserve [post]
func (h *PostingHandler) Reserve(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid posting ID format", nil)
		return
	}
	var req reqdto.ReservePostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.ReservePosting(c.Request.Context(), req, id, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPostingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Posting not found", nil)
		case errors.Is(err, errs.ErrPostingReserved):
			httperr.AbortWithError(c, http.StatusConflict, err, "Posting is already reserved", nil)
		case errors.Is(err, errs.ErrInvalidSpan):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Span is not contained in the posting", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid span", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromPostingView(view))
}
