package spot

import (
	"errors"
	"time"

	"parkspot/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidPrice    = errors.New("price per hour must be positive")
	ErrMissingAddress  = errors.New("street and city are required")
	ErrInvalidWeekday  = errors.New("invalid weekday name")
	ErrInvalidWindow   = errors.New("invalid operating window")
	ErrInactive        = errors.New("parking spot is not active")
	ErrInvalidLocation = errors.New("latitude/longitude out of range")
)

// OperatingInterval is a recurring weekday-scoped window during which
// the spot is nominally available. Rows are immutable once created and
// replaced wholesale when the host edits availability.
type OperatingInterval struct {
	Day       string
	StartTime string
	EndTime   string
}

var weekdays = map[string]struct{}{
	"Monday": {}, "Tuesday": {}, "Wednesday": {}, "Thursday": {},
	"Friday": {}, "Saturday": {}, "Sunday": {},
}

// NewOperatingInterval validates the weekday name and that both clock
// strings parse to a positive-length window.
func NewOperatingInterval(day, startTime, endTime string) (OperatingInterval, error) {
	if _, ok := weekdays[day]; !ok {
		return OperatingInterval{}, ErrInvalidWeekday
	}
	start, err := schedule.ParseClock(startTime)
	if err != nil {
		return OperatingInterval{}, err
	}
	end, err := schedule.ParseClock(endTime)
	if err != nil {
		return OperatingInterval{}, err
	}
	if start >= end {
		return OperatingInterval{}, ErrInvalidWindow
	}
	return OperatingInterval{Day: day, StartTime: startTime, EndTime: endTime}, nil
}

type Spot struct {
	id           uuid.UUID
	hostID       uuid.UUID
	street       string
	city         string
	province     string
	postalCode   string
	country      string
	lat          float64
	lng          float64
	pricePerHour float64
	isActive     bool
	createdAt    time.Time
}

func NewSpot(hostID uuid.UUID, street, city, province, postalCode, country string, lat, lng, pricePerHour float64) (*Spot, error) {
	if street == "" || city == "" {
		return nil, ErrMissingAddress
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, ErrInvalidLocation
	}
	if pricePerHour <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Spot{
		id:           uuid.New(),
		hostID:       hostID,
		street:       street,
		city:         city,
		province:     province,
		postalCode:   postalCode,
		country:      country,
		lat:          lat,
		lng:          lng,
		pricePerHour: pricePerHour,
		isActive:     true,
	}, nil
}

func ReconstructSpot(id, hostID uuid.UUID, street, city, province, postalCode, country string, lat, lng, pricePerHour float64, isActive bool, createdAt time.Time) *Spot {
	return &Spot{
		id:           id,
		hostID:       hostID,
		street:       street,
		city:         city,
		province:     province,
		postalCode:   postalCode,
		country:      country,
		lat:          lat,
		lng:          lng,
		pricePerHour: pricePerHour,
		isActive:     isActive,
		createdAt:    createdAt,
	}
}

func (s *Spot) ID() uuid.UUID         { return s.id }
func (s *Spot) HostID() uuid.UUID     { return s.hostID }
func (s *Spot) Street() string        { return s.street }
func (s *Spot) City() string          { return s.city }
func (s *Spot) Province() string      { return s.province }
func (s *Spot) PostalCode() string    { return s.postalCode }
func (s *Spot) Country() string       { return s.country }
func (s *Spot) Lat() float64          { return s.lat }
func (s *Spot) Lng() float64          { return s.lng }
func (s *Spot) PricePerHour() float64 { return s.pricePerHour }
func (s *Spot) IsActive() bool        { return s.isActive }
func (s *Spot) CreatedAt() time.Time  { return s.createdAt }
