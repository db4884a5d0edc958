package booking

import (
	"errors"
	"time"

	"parkspot/internal/domain/schedule"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// ActiveStatuses are the statuses that hold a time slot and therefore
// participate in conflict detection.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

var (
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidDuration  = errors.New("booking duration must be positive")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

type Booking struct {
	id         uuid.UUID
	spotID     uuid.UUID
	driverID   uuid.UUID
	date       string
	startTime  string
	endTime    string
	startMin   int
	endMin     int
	totalPrice float64
	status     Status
	createdAt  time.Time
}

// NewBooking parses and validates the requested span and derives the
// total price from the spot's hourly rate. The slot is priced by exact
// minutes, so a 90 minute stay costs 1.5x the hourly rate.
func NewBooking(spotID, driverID uuid.UUID, date, startTime, endTime string, pricePerHour float64) (*Booking, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}
	startMin, err := schedule.ParseClock(startTime)
	if err != nil {
		return nil, err
	}
	endMin, err := schedule.ParseClock(endTime)
	if err != nil {
		return nil, err
	}
	if startMin >= endMin {
		return nil, ErrInvalidDuration
	}

	return &Booking{
		id:         uuid.New(),
		spotID:     spotID,
		driverID:   driverID,
		date:       date,
		startTime:  startTime,
		endTime:    endTime,
		startMin:   startMin,
		endMin:     endMin,
		totalPrice: float64(endMin-startMin) / 60.0 * pricePerHour,
		status:     StatusConfirmed,
	}, nil
}

func ReconstructBooking(id, spotID, driverID uuid.UUID, date, startTime, endTime string, totalPrice float64, status Status, createdAt time.Time) (*Booking, error) {
	startMin, err := schedule.ParseClock(startTime)
	if err != nil {
		return nil, err
	}
	endMin, err := schedule.ParseClock(endTime)
	if err != nil {
		return nil, err
	}
	return &Booking{
		id:         id,
		spotID:     spotID,
		driverID:   driverID,
		date:       date,
		startTime:  startTime,
		endTime:    endTime,
		startMin:   startMin,
		endMin:     endMin,
		totalPrice: totalPrice,
		status:     status,
		createdAt:  createdAt,
	}, nil
}

// Cancel transitions the booking to cancelled. Cancelling twice is an
// error so callers can surface it distinctly from success.
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

// Weekday returns the day name ("Monday" ...) of the booking date.
func (b *Booking) Weekday() string {
	t, _ := time.Parse("2006-01-02", b.date)
	return t.Weekday().String()
}

func (b *Booking) ID() uuid.UUID       { return b.id }
func (b *Booking) SpotID() uuid.UUID   { return b.spotID }
func (b *Booking) DriverID() uuid.UUID { return b.driverID }
func (b *Booking) Date() string        { return b.date }
func (b *Booking) StartTime() string   { return b.startTime }
func (b *Booking) EndTime() string     { return b.endTime }
func (b *Booking) StartMin() int       { return b.startMin }
func (b *Booking) EndMin() int         { return b.endMin }
func (b *Booking) TotalPrice() float64 { return b.totalPrice }
func (b *Booking) Status() Status      { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// Overlaps reports whether the booking's span intersects [startMin, endMin).
func (b *Booking) Overlaps(startMin, endMin int) bool {
	return !(endMin <= b.startMin || startMin >= b.endMin)
}
