package posting

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSpan = errors.New("posting span must satisfy 0 <= start < end")
	ErrReserved    = errors.New("posting is already reserved")
)

// Posting is a single reservable fragment of time on a spot. Reserving
// part of a posting consumes the whole row and spawns new postings for
// the leftover minutes on either side.
type Posting struct {
	id         uuid.UUID
	spotID     uuid.UUID
	date       string
	startMin   int
	endMin     int
	reservedBy *uuid.UUID
	createdAt  time.Time
}

func NewPosting(spotID uuid.UUID, date string, startMin, endMin int) (*Posting, error) {
	if startMin < 0 || startMin >= endMin {
		return nil, ErrInvalidSpan
	}
	return &Posting{
		id:       uuid.New(),
		spotID:   spotID,
		date:     date,
		startMin: startMin,
		endMin:   endMin,
	}, nil
}

func ReconstructPosting(id, spotID uuid.UUID, date string, startMin, endMin int, reservedBy *uuid.UUID, createdAt time.Time) *Posting {
	return &Posting{
		id:         id,
		spotID:     spotID,
		date:       date,
		startMin:   startMin,
		endMin:     endMin,
		reservedBy: reservedBy,
		createdAt:  createdAt,
	}
}

func (p *Posting) ID() uuid.UUID          { return p.id }
func (p *Posting) SpotID() uuid.UUID      { return p.spotID }
func (p *Posting) Date() string           { return p.date }
func (p *Posting) StartMin() int          { return p.startMin }
func (p *Posting) EndMin() int            { return p.endMin }
func (p *Posting) ReservedBy() *uuid.UUID { return p.reservedBy }
func (p *Posting) CreatedAt() time.Time   { return p.createdAt }

func (p *Posting) IsReserved() bool { return p.reservedBy != nil }

// ContainsSpan reports whether [startMin, endMin) is a valid non-empty
// span lying fully inside the posting.
func (p *Posting) ContainsSpan(startMin, endMin int) bool {
	return p.startMin <= startMin && startMin < endMin && endMin <= p.endMin
}

// Fragments returns the leftover spans that remain when [startMin, endMin)
// is carved out of the posting. Zero-length leftovers are omitted.
func (p *Posting) Fragments(startMin, endMin int) [][2]int {
	var out [][2]int
	if p.startMin < startMin {
		out = append(out, [2]int{p.startMin, startMin})
	}
	if endMin < p.endMin {
		out = append(out, [2]int{endMin, p.endMin})
	}
	return out
}
