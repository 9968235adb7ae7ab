package domain

import "time"

// JobID is an opaque identifier. Canonically a UUID, but never parsed —
// the backing store has carried both numeric and UUID ids historically.
type JobID string

// UserID matches the id of the owning auth user.
type UserID string

type JobStatus string

const (
	JobStatusOpen     JobStatus = "OPEN"
	JobStatusAccepted JobStatus = "ACCEPTED"
	JobStatusClosed   JobStatus = "CLOSED"
)

type Job struct {
	ID             JobID     `json:"id"`
	OwnerID        UserID    `json:"owner_id"`
	Owner          *Profile  `json:"owner,omitempty"` // Populated when fetching the feed
	Title          string    `json:"title"`
	Amount         float64   `json:"amount"`
	Location       string    `json:"location"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	JobDate        string    `json:"job_date"`
	ShiftStart     string    `json:"shift_start"`
	ShiftEnd       string    `json:"shift_end"`
	HasFood        bool      `json:"has_food"`
	DressCode      string    `json:"dress_code"`
	Status         JobStatus `json:"status"`
	HiredApplicant *UserID   `json:"hired_applicant,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	// DistanceKm is derived from the viewer's coordinates at fetch time and
	// never persisted. Nil means unknown, not zero.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}
