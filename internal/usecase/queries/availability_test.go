//go:build unit

package queries_test

import (
	"context"
	"testing"

	"parkspot/internal/infra"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/usecase/queries"
	queriesmock "parkspot/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockSpotRepo *queriesmock.MockSpotViewRepo
	mockSpanRepo *queriesmock.MockAvailabilitySpanRepo
	queries      queries.AvailabilityQueries
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSpotRepo = queriesmock.NewMockSpotViewRepo(s.mockCtrl)
	s.mockSpanRepo = queriesmock.NewMockAvailabilitySpanRepo(s.mockCtrl)
	s.queries = queries.NewAvailabilityQueries(s.mockSpotRepo, s.mockSpanRepo)
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func (s *AvailabilityQueriesTestSuite) TestForDate() {
	ctx := context.Background()
	spotID := uuid.New()
	date := "2025-07-14" // a Monday

	spotView := &queries.SpotView{ID: spotID, IsActive: true}

	weekIntervals := []queries.OperatingIntervalView{
		{Day: "Monday", StartTime: "9:00am", EndTime: "5:00pm"},
		{Day: "Monday", StartTime: "6:00pm", EndTime: "9:00pm"},
		{Day: "Tuesday", StartTime: "8:00am", EndTime: "12:00pm"},
	}

	s.Run("成功: 予約区間を差し引いた空き枠を正規化された12時間表記で返す", func() {
		s.mockSpotRepo.EXPECT().FindByID(ctx, spotID).Return(spotView, nil)
		s.mockSpotRepo.EXPECT().FindOperatingIntervals(ctx, spotID).Return(weekIntervals, nil)
		s.mockSpanRepo.EXPECT().FindActiveSpans(ctx, spotID, date).
			Return([]queries.BookedSpanView{
				{StartTime: "10:00 AM", EndTime: "11:30 AM"},
				{StartTime: "2:00 PM", EndTime: "3:00 PM"},
			}, nil)

		view, err := s.queries.ForDate(ctx, spotID, date)
		s.Require().NoError(err)

		s.Equal("Monday", view.Weekday)
		s.Len(view.OperatingHours, 2)
		s.Equal([]queries.SlotView{
			{StartTime: "9:00 AM", EndTime: "10:00 AM"},
			{StartTime: "11:30 AM", EndTime: "2:00 PM"},
			{StartTime: "3:00 PM", EndTime: "5:00 PM"},
			{StartTime: "6:00 PM", EndTime: "9:00 PM"},
		}, view.AvailableSlots)
	})

	s.Run("成功: 予約がなければ営業時間全体が空き枠になる", func() {
		s.mockSpotRepo.EXPECT().FindByID(ctx, spotID).Return(spotView, nil)
		s.mockSpotRepo.EXPECT().FindOperatingIntervals(ctx, spotID).Return(weekIntervals, nil)
		s.mockSpanRepo.EXPECT().FindActiveSpans(ctx, spotID, date).
			Return([]queries.BookedSpanView{}, nil)

		view, err := s.queries.ForDate(ctx, spotID, date)
		s.Require().NoError(err)
		s.Equal([]queries.SlotView{
			{StartTime: "9:00 AM", EndTime: "5:00 PM"},
			{StartTime: "6:00 PM", EndTime: "9:00 PM"},
		}, view.AvailableSlots)
	})

	s.Run("成功: その曜日の営業時間がなければ空き枠は空配列", func() {
		sunday := "2025-07-13"
		s.mockSpotRepo.EXPECT().FindByID(ctx, spotID).Return(spotView, nil)
		s.mockSpotRepo.EXPECT().FindOperatingIntervals(ctx, spotID).Return(weekIntervals, nil)

		view, err := s.queries.ForDate(ctx, spotID, sunday)
		s.Require().NoError(err)
		s.Equal("Sunday", view.Weekday)
		s.Empty(view.OperatingHours)
		s.Equal([]queries.SlotView{}, view.AvailableSlots)
	})

	s.Run("成功: 全面的に予約済みの日は空き枠が空配列", func() {
		s.mockSpotRepo.EXPECT().FindByID(ctx, spotID).Return(spotView, nil)
		s.mockSpotRepo.EXPECT().FindOperatingIntervals(ctx, spotID).Return(weekIntervals, nil)
		s.mockSpanRepo.EXPECT().FindActiveSpans(ctx, spotID, date).
			Return([]queries.BookedSpanView{
				{StartTime: "9:00 AM", EndTime: "5:00 PM"},
				{StartTime: "6:00 PM", EndTime: "9:00 PM"},
			}, nil)

		view, err := s.queries.ForDate(ctx, spotID, date)
		s.Require().NoError(err)
		s.Equal([]queries.SlotView{}, view.AvailableSlots)
	})

	s.Run("失敗: 不正な日付", func() {
		_, err := s.queries.ForDate(ctx, spotID, "07/14/2025")
		s.ErrorIs(err, errs.ErrInvalidDate)
	})

	s.Run("失敗: スポットが存在しない", func() {
		s.mockSpotRepo.EXPECT().FindByID(ctx, spotID).
			Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))

		_, err := s.queries.ForDate(ctx, spotID, date)
		s.ErrorIs(err, errs.ErrSpotNotFound)
	})
}
