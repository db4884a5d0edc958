//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"parkspot/internal/handler/api"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase"
	"parkspot/internal/usecase/queries"
	"parkspot/tests/common/httptest"
	"parkspot/tests/common/testutil"
	usecasemock "parkspot/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockAuthUseCase
	handler     *api.AuthHandler
	userID      uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockAuthUseCase(s.mockCtrl)
	s.handler = api.NewAuthHandler(s.mockUseCase)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/auth/register", s.handler.Register)
	s.router.POST("/auth/login", s.handler.Login)
	s.router.GET("/auth/me", authMiddleware, s.handler.Me)
	s.router.GET("/users/:id", s.handler.GetUser)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) userView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       s.userID,
		Email:    "host@example.com",
		Name:     "Host User",
		IsActive: true,
	}
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *AuthHandlerTestSuite) TestRegister() {
	url := "/auth/register"

	reqBody := map[string]any{
		"email":    "host@example.com",
		"password": "password123",
		"name":     "Host User",
	}

	s.Run("success: returns 201 Created with token and user", func() {
		s.mockUseCase.EXPECT().Register(gomock.Any(), "host@example.com", "password123", "Host User").
			Return(&usecase.AuthResult{Token: "signed-token", User: s.userView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("signed-token", response.AccessToken)
		s.Equal(s.userID, response.User.ID)
		s.Equal("host@example.com", response.User.Email)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		missing := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
			{name: "missing password", mutate: testutil.Field("password", nil)},
			{name: "password too short", mutate: testutil.Field("password", "short")},
			{name: "missing name", mutate: testutil.Field("name", nil)},
		}
		for _, tt := range missing {
			s.Run(tt.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tt.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 409 Conflict when email is taken", func() {
		s.mockUseCase.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Email already registered")
	})

	s.Run("error: 500 Internal Server Error on unexpected failure", func() {
		s.mockUseCase.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := map[string]any{
		"email":    "host@example.com",
		"password": "password123",
	}

	s.Run("success: returns 200 OK with token", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), "host@example.com", "password123").
			Return(&usecase.AuthResult{Token: "signed-token", User: s.userView()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("signed-token", response.AccessToken)
	})

	s.Run("error: 401 Unauthorized for bad credentials", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 403 Forbidden for deactivated account", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrUserInactive).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Account is deactivated")
	})

	s.Run("error: 400 Bad Request for malformed body", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("email", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestMe
// ================================================================================

func (s *AuthHandlerTestSuite) TestMe() {
	url := "/auth/me"

	s.Run("success: returns the authenticated user", func() {
		s.mockUseCase.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(s.userView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response queries.AuthorizedUserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.userID, response.ID)
		s.True(response.IsActive)
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 404 Not Found when the account no longer exists", func() {
		s.mockUseCase.EXPECT().GetCurrentUser(gomock.Any(), s.userID).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

// ================================================================================
// TestGetUser
// ================================================================================

func (s *AuthHandlerTestSuite) TestGetUser() {
	s.Run("success: returns the public name-only profile", func() {
		s.mockUseCase.EXPECT().GetPublicProfile(gomock.Any(), s.userID).
			Return(&queries.PublicUserView{ID: s.userID, Name: "Host User"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+s.userID.String(), nil, "")

		var response queries.PublicUserView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(s.userID, response.ID)
		s.Equal("Host User", response.Name)
	})

	s.Run("error: 400 Bad Request for malformed UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user ID format")
	})

	s.Run("error: 404 Not Found for unknown user", func() {
		s.mockUseCase.EXPECT().GetPublicProfile(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
