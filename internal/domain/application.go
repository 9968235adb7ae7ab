package domain

import "time"

type ApplicationID string

type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "PENDING"
	ApplicationStatusAccepted ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected ApplicationStatus = "REJECTED"
)

// Application links an applicant to a job. At most one exists per
// (job, applicant) pair.
type Application struct {
	ID          ApplicationID     `json:"id"`
	JobID       JobID             `json:"job_id"`
	ApplicantID UserID            `json:"applicant_id"`
	Applicant   *Profile          `json:"applicant,omitempty"` // Populated for the job owner's view
	Job         *Job              `json:"job,omitempty"`       // Populated for the applicant's view
	Status      ApplicationStatus `json:"status"`
	CreatedAt   time.Time         `json:"created_at"`
}
