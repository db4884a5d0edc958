//go:build unit || e2e

package builder

import (
	"time"

	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	SpotID     uuid.UUID
	DriverID   uuid.UUID
	Date       string
	StartTime  string
	EndTime    string
	TotalPrice float64
	Status     string
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		SpotID:     uuid.New(),
		DriverID:   uuid.New(),
		Date:       "2025-07-14",
		StartTime:  "9:00 AM",
		EndTime:    "11:00 AM",
		TotalPrice: 20.0,
		Status:     "confirmed",
		CreatedAt:  time.Now(),
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SpotID:    b.SpotID,
		Date:      b.Date,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:         uuid.New(),
		SpotID:     b.SpotID,
		DriverID:   b.DriverID,
		Date:       b.Date,
		StartTime:  b.StartTime,
		EndTime:    b.EndTime,
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithSpotID(spotID uuid.UUID) *BookingBuilder {
	b.SpotID = spotID
	return b
}

func (b *BookingBuilder) WithDriverID(driverID uuid.UUID) *BookingBuilder {
	b.DriverID = driverID
	return b
}

func (b *BookingBuilder) WithSpan(startTime, endTime string) *BookingBuilder {
	b.StartTime = startTime
	b.EndTime = endTime
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}
