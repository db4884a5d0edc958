package response

import (
	"time"

	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SpotResponse struct {
	ID           uuid.UUID `json:"id"`
	HostID       uuid.UUID `json:"hostId"`
	Street       string    `json:"street"`
	City         string    `json:"city"`
	Province     string    `json:"province"`
	PostalCode   string    `json:"postalCode"`
	Country      string    `json:"country"`
	Lat          float64   `json:"lat"`
	Lng          float64   `json:"lng"`
	PricePerHour float64   `json:"pricePerHour"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

type OperatingIntervalResponse struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type DayAvailabilityResponse struct {
	SpotID         uuid.UUID                   `json:"spotId"`
	Date           string                      `json:"date"`
	Weekday        string                      `json:"weekday"`
	OperatingHours []OperatingIntervalResponse `json:"operatingHours"`
	AvailableSlots []SlotResponse              `json:"availableSlots"`
}

func FromSpotView(view *queries.SpotView) *SpotResponse {
	resp := &SpotResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromSpotViews(views []*queries.SpotView) []*SpotResponse {
	resps := make([]*SpotResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromSpotView(v))
	}
	return resps
}

func FromDayAvailabilityView(view *queries.DayAvailabilityView) *DayAvailabilityResponse {
	resp := &DayAvailabilityResponse{
		OperatingHours: []OperatingIntervalResponse{},
		AvailableSlots: []SlotResponse{},
	}
	_ = copier.Copy(resp, view)
	return resp
}
