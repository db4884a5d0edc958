package api

import (
	"errors"
	"net/http"

	reqdto "parkspot/internal/handler/dto/request"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/handler/httperr"
	"parkspot/internal/handler/middleware"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Register
// @Description Register a new account and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.authUseCase.Register(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid registration data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.AuthResponse{
		AccessToken: result.Token,
		User:        result.User,
	})
}

// @Summary Login
// @Description Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errors.Is(err, errs.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is deactivated", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AuthResponse{
		AccessToken: result.Token,
		User:        result.User,
	})
}

// @Summary Current user
// @Description Return the authenticated account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	view, err := h.authUseCase.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, errs.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is deactivated", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Public user profile
// @Description Return the public name-only view of a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} queries.PublicUserView
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
func (h *AuthHandler) GetUser(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user ID format", nil)
		return
	}

	view, err := h.authUseCase.GetPublicProfile(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}
