package request

import "github.com/google/uuid"

type CreateBookingRequest struct {
	SpotID    uuid.UUID `json:"spot_id" binding:"required"`
	Date      string    `json:"date" binding:"required"`
	StartTime string    `json:"start_time" binding:"required"`
	EndTime   string    `json:"end_time" binding:"required"`
}
