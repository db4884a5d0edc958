package response

import (
	"time"

	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	SpotID     uuid.UUID `json:"spotId"`
	DriverID   uuid.UUID `json:"driverId"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	resp := &BookingResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	resps := make([]*BookingResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromBookingView(v))
	}
	return resps
}
