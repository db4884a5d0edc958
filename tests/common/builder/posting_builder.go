//go:build unit || e2e

package builder

import (
	"time"

	reqdto "parkspot/internal/handler/dto/request"
	"parkspot/internal/usecase/queries"

	"github.com/google/uuid"
)

type PostingBuilder struct {
	SpotID     uuid.UUID
	Date       string
	StartTime  string
	EndTime    string
	ReservedBy *uuid.UUID
	CreatedAt  time.Time
}

func NewPostingBuilder() *PostingBuilder {
	return &PostingBuilder{
		SpotID:    uuid.New(),
		Date:      "2025-07-14",
		StartTime: "8:00 AM",
		EndTime:   "6:00 PM",
		CreatedAt: time.Now(),
	}
}

func (p *PostingBuilder) BuildCreateRequestDTO() reqdto.CreatePostingRequest {
	return reqdto.CreatePostingRequest{
		SpotID:    p.SpotID,
		Date:      p.Date,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
	}
}

func (p *PostingBuilder) BuildReserveRequestDTO() reqdto.ReservePostingRequest {
	return reqdto.ReservePostingRequest{
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
	}
}

func (p *PostingBuilder) BuildView() *queries.PostingView {
	return &queries.PostingView{
		ID:         uuid.New(),
		SpotID:     p.SpotID,
		Date:       p.Date,
		StartTime:  p.StartTime,
		EndTime:    p.EndTime,
		ReservedBy: p.ReservedBy,
		CreatedAt:  p.CreatedAt,
	}
}

// Fluent builder methods
func (p *PostingBuilder) WithSpotID(spotID uuid.UUID) *PostingBuilder {
	p.SpotID = spotID
	return p
}

func (p *PostingBuilder) WithSpan(startTime, endTime string) *PostingBuilder {
	p.StartTime = startTime
	p.EndTime = endTime
	return p
}

func (p *PostingBuilder) WithReservedBy(userID uuid.UUID) *PostingBuilder {
	p.ReservedBy = &userID
	return p
}
