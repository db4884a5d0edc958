//go:build unit || e2e

package builder

import (
	"time"

	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type SpotBuilder struct {
	HostID       uuid.UUID
	Street       string
	City         string
	Province     string
	PostalCode   string
	Country      string
	Lat          float64
	Lng          float64
	PricePerHour float64
	IsActive     bool
	CreatedAt    time.Time
}

func NewSpotBuilder() *SpotBuilder {
	return &SpotBuilder{
		HostID:       uuid.New(),
		Street:       "100 King St W",
		City:         "Toronto",
		Province:     "ON",
		PostalCode:   "M5X 1A9",
		Country:      "Canada",
		Lat:          43.6487,
		Lng:          -79.3817,
		PricePerHour: 10.0,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

func (b *SpotBuilder) BuildCreateRequestDTO() reqdto.CreateSpotRequest {
	return reqdto.CreateSpotRequest{
		Street:       b.Street,
		City:         b.City,
		Province:     b.Province,
		PostalCode:   b.PostalCode,
		Country:      b.Country,
		Lat:          b.Lat,
		Lng:          b.Lng,
		PricePerHour: b.PricePerHour,
	}
}

func (b *SpotBuilder) BuildView() *queries.SpotView {
	return &queries.SpotView{
		ID:           uuid.New(),
		HostID:       b.HostID,
		Street:       b.Street,
		City:         b.City,
		Province:     b.Province,
		PostalCode:   b.PostalCode,
		Country:      b.Country,
		Lat:          b.Lat,
		Lng:          b.Lng,
		PricePerHour: b.PricePerHour,
		IsActive:     b.IsActive,
		CreatedAt:    b.CreatedAt,
	}
}

// Fluent builder methods
func (b *SpotBuilder) WithHostID(hostID uuid.UUID) *SpotBuilder {
	b.HostID = hostID
	return b
}

func (b *SpotBuilder) WithCity(city string) *SpotBuilder {
	b.City = city
	return b
}

func (b *SpotBuilder) WithPricePerHour(price float64) *SpotBuilder {
	b.PricePerHour = price
	return b
}

func (b *SpotBuilder) AsInactive() *SpotBuilder {
	b.IsActive = false
	return b
}
