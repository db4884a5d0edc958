//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"parkspot/internal/handler/api"
	resdto "parkspot/internal/handler/dto/response"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"
	"parkspot/tests/common/builder"
	"parkspot/tests/common/httptest"
	"parkspot/tests/common/testutil"
	commandsmock "parkspot/tests/mock/commands"
	queriesmock "parkspot/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SpotHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockSpotCommands
	mockQueries      *queriesmock.MockSpotQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.SpotHandler
}

func (s *SpotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSpotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSpotQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewSpotHandler(s.mockCommands, s.mockQueries, s.mockAvailability)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Next()
	}

	s.router.GET("/spots", s.handler.List)
	s.router.GET("/spots/:id", s.handler.Get)
	s.router.GET("/spots/:id/operating-hours", s.handler.GetOperatingHours)
	s.router.GET("/spots/:id/availability", s.handler.Availability)
	s.router.POST("/spots", authMiddleware, s.handler.Create)
	s.router.PUT("/spots/:id/operating-hours", authMiddleware, s.handler.SetOperatingHours)
	s.router.DELETE("/spots/:id", authMiddleware, s.handler.Deactivate)
}

func (s *SpotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSpotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SpotHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *SpotHandlerTestSuite) TestCreate() {
	url := "/spots"

	reqBody := builder.NewSpotBuilder().BuildCreateRequestDTO()
	returnView := builder.NewSpotBuilder().BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateSpot(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.SpotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.City, response.City)
		s.Equal(returnView.PricePerHour, response.PricePerHour)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		missing := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing street", mutate: testutil.Field("street", nil)},
			{name: "missing city", mutate: testutil.Field("city", nil)},
			{name: "missing price_per_hour", mutate: testutil.Field("price_per_hour", nil)},
			{name: "zero price_per_hour", mutate: testutil.Field("price_per_hour", 0)},
		}
		for _, tt := range missing {
			s.Run(tt.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tt.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 400 Bad Request on domain validation failure", func() {
		s.mockCommands.EXPECT().CreateSpot(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid spot data")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *SpotHandlerTestSuite) TestList() {
	url := "/spots"

	s.Run("success: returns all active spots without filters", func() {
		views := []*queries.SpotView{
			builder.NewSpotBuilder().BuildView(),
			builder.NewSpotBuilder().WithCity("Ottawa").BuildView(),
		}
		s.mockQueries.EXPECT().List(gomock.Any(), queries.SpotFilters{}).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.SpotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: passes city and max_price filters", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, filters queries.SpotFilters) ([]*queries.SpotView, error) {
				s.Require().NotNil(filters.City)
				s.Equal("Toronto", *filters.City)
				s.Require().NotNil(filters.MaxPrice)
				s.Equal(12.5, *filters.MaxPrice)
				return []*queries.SpotView{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?city=Toronto&max_price=12.5", nil, "")

		var response []resdto.SpotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("error: 400 Bad Request for malformed max_price", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?max_price=cheap", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid max_price")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *SpotHandlerTestSuite) TestGet() {
	returnView := builder.NewSpotBuilder().BuildView()

	s.Run("success: returns spot by ID", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots/"+returnView.ID.String(), nil, "")

		var response resdto.SpotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("error: 400 Bad Request for malformed UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid spot ID format")
	})

	s.Run("error: 404 Not Found for unknown spot", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrSpotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/spots/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Spot not found")
	})
}

// ================================================================================
// TestSetOperatingHours
// ================================================================================

func (s *SpotHandlerTestSuite) TestSetOperatingHours() {
	spotID := uuid.New()
	url := "/spots/" + spotID.String() + "/operating-hours"

	reqBody := map[string]any{
		"intervals": []map[string]any{
			{"day": "Monday", "start_time": "9:00am", "end_time": "5:00pm"},
		},
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().SetOperatingHours(gomock.Any(), spotID, gomock.Any(), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: use case failures map to status codes", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "spot not found", err: errs.ErrSpotNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Spot not found"},
			{name: "not the owner", err: errs.ErrNotSpotOwner, expectedStatus: http.StatusForbidden, expectedMsg: "Not the spot owner"},
			{name: "invalid hours", err: errs.ErrDomainValidation, expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid operating hours"},
			{name: "unexpected", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tt := range cases {
			s.Run(tt.name, func() {
				s.mockCommands.EXPECT().SetOperatingHours(gomock.Any(), spotID, gomock.Any(), gomock.Any()).
					Return(tt.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tt.expectedStatus, tt.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetOperatingHours
// ================================================================================

func (s *SpotHandlerTestSuite) TestGetOperatingHours() {
	spotID := uuid.New()
	url := "/spots/" + spotID.String() + "/operating-hours"

	s.Run("success: returns stored intervals", func() {
		intervals := []queries.OperatingIntervalView{
			{Day: "Monday", StartTime: "9:00am", EndTime: "5:00pm"},
			{Day: "Tuesday", StartTime: "8:00am", EndTime: "12:00pm"},
		}
		s.mockQueries.EXPECT().OperatingHours(gomock.Any(), spotID).
			Return(intervals, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []queries.OperatingIntervalView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(intervals, response)
	})

	s.Run("success: empty schedule yields empty array", func() {
		s.mockQueries.EXPECT().OperatingHours(gomock.Any(), spotID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []queries.OperatingIntervalView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 404 Not Found for unknown spot", func() {
		s.mockQueries.EXPECT().OperatingHours(gomock.Any(), spotID).
			Return(nil, errs.ErrSpotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Spot not found")
	})
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *SpotHandlerTestSuite) TestAvailability() {
	spotID := uuid.New()
	url := "/spots/" + spotID.String() + "/availability"

	s.Run("success: returns windows and free slots", func() {
		view := &queries.DayAvailabilityView{
			SpotID:  spotID,
			Date:    "2025-07-14",
			Weekday: "Monday",
			OperatingHours: []queries.OperatingIntervalView{
				{Day: "Monday", StartTime: "9:00am", EndTime: "5:00pm"},
			},
			AvailableSlots: []queries.SlotView{
				{StartTime: "9:00 AM", EndTime: "11:00 AM"},
				{StartTime: "1:00 PM", EndTime: "5:00 PM"},
			},
		}
		s.mockAvailability.EXPECT().ForDate(gomock.Any(), spotID, "2025-07-14").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2025-07-14", nil, "")

		var response resdto.DayAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Monday", response.Weekday)
		s.Len(response.AvailableSlots, 2)
		s.Equal("9:00 AM", response.AvailableSlots[0].StartTime)
	})

	s.Run("error: 400 Bad Request without date parameter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date query parameter is required")
	})

	s.Run("error: 400 Bad Request for malformed date", func() {
		s.mockAvailability.EXPECT().ForDate(gomock.Any(), spotID, "07/14/2025").
			Return(nil, errs.ErrInvalidDate).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=07%2F14%2F2025", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: 404 Not Found for unknown spot", func() {
		s.mockAvailability.EXPECT().ForDate(gomock.Any(), spotID, "2025-07-14").
			Return(nil, errs.ErrSpotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2025-07-14", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Spot not found")
	})
}

// ================================================================================
// TestDeactivate
// ================================================================================

func (s *SpotHandlerTestSuite) TestDeactivate() {
	spotID := uuid.New()
	url := "/spots/" + spotID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), spotID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 403 Forbidden when not the owner", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), spotID, gomock.Any()).
			Return(errs.ErrNotSpotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not the spot owner")
	})

	s.Run("error: 404 Not Found for unknown spot", func() {
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), spotID, gomock.Any()).
			Return(errs.ErrSpotNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Spot not found")
	})
}
