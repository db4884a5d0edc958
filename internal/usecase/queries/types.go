package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SpotView struct {
	ID           uuid.UUID `json:"id"`
	HostID       uuid.UUID `json:"host_id"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	Province     string    `json:"province"`
	PostalCode   string    `json:"postal_code"`
	Country      string    `json:"country"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	PricePerHour float64   `json:"price_per_hour"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type OperatingIntervalView struct {
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type BookingView struct {
	ID         uuid.UUID `json:"id"`
	SpotID     uuid.UUID `json:"spot_id"`
	DriverID   uuid.UUID `json:"driver_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// BookedSpanView carries just the clock strings of one active booking,
// enough for conflict checks and free-slot subtraction.
type BookedSpanView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type SlotView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type DayAvailabilityView struct {
	SpotID         uuid.UUID               `json:"spot_id"`
	Date           string                  `json:"date"`
	Weekday        string                  `json:"weekday"`
	OperatingHours []OperatingIntervalView `json:"operating_hours"`
	AvailableSlots []SlotView              `json:"available_slots"`
}

type PostingView struct {
	ID         uuid.UUID  `json:"id"`
	SpotID     uuid.UUID  `json:"spot_id"`
	Date       string     `json:"date"`
	StartTime  string     `json:"start_time"`
	EndTime    string     `json:"end_time"`
	ReservedBy *uuid.UUID `json:"reserved_by,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}

// PublicUserView is the profile shown to other users.
type PublicUserView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
