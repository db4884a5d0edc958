package commands

import (
	"context"

	"parkspot/internal/domain/booking"
	"parkspot/internal/domain/posting"
	"parkspot/internal/domain/spot"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type SpotSnapshot struct {
	ID           uuid.UUID
	HostID       uuid.UUID
	PricePerHour float64
	IsActive     bool
}

type OperatingWindowSnapshot struct {
	Day       string
	StartTime string
	EndTime   string
}

type BookingSnapshot struct {
	ID       uuid.UUID
	SpotID   uuid.UUID
	DriverID uuid.UUID
	Date     string
	Status   string
}

type BookedSpanSnapshot struct {
	StartTime string
	EndTime   string
}

type PostingSnapshot struct {
	ID         uuid.UUID
	SpotID     uuid.UUID
	Date       string
	StartMin   int
	EndMin     int
	ReservedBy *uuid.UUID
}

type SpotRepository interface {
	Create(ctx context.Context, s *spot.Spot) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*SpotSnapshot, error)
	FindOperatingWindows(ctx context.Context, spotID uuid.UUID, day string) ([]OperatingWindowSnapshot, error)
	ReplaceOperatingIntervals(ctx context.Context, spotID uuid.UUID, intervals []spot.OperatingInterval) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	FindActiveSpans(ctx context.Context, spotID uuid.UUID, date string) ([]BookedSpanSnapshot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
}

type PostingRepository interface {
	Create(ctx context.Context, p *posting.Posting) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*PostingSnapshot, error)

	// ConditionalReserve narrows the posting to [startMin, endMin) and
	// stamps the reserver in one guarded update. It reports false when
	// someone else already holds the row.
	ConditionalReserve(ctx context.Context, id uuid.UUID, userID uuid.UUID, startMin, endMin int) (bool, error)
	InsertFragment(ctx context.Context, spotID uuid.UUID, date string, startMin, endMin int) error
}
