package response

import (
	"time"

	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PostingResponse struct {
	ID         uuid.UUID  `json:"id"`
	SpotID     uuid.UUID  `json:"spotId"`
	Date       string     `json:"date"`
	StartTime  string     `json:"startTime"`
	EndTime    string     `json:"endTime"`
	ReservedBy *uuid.UUID `json:"reservedBy,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

func FromPostingView(view *queries.PostingView) *PostingResponse {
	resp := &PostingResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromPostingViews(views []*queries.PostingView) []*PostingResponse {
	resps := make([]*PostingResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromPostingView(v))
	}
	return resps
}
