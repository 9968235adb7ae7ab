package domain

type EventKind string

const (
	EventMessageReceived     EventKind = "MESSAGE_RECEIVED"
	EventApplicationAccepted EventKind = "APPLICATION_ACCEPTED"
)

// MessageReceived is emitted when a chat message is stored.
type MessageReceived struct {
	MessageID  string `json:"message_id"`
	SenderID   UserID `json:"sender_id"`
	SenderName string `json:"sender_name,omitempty"`
	ReceiverID UserID `json:"receiver_id"`
	Content    string `json:"content"`
}

// ApplicationAccepted is emitted when a job owner hires an applicant.
type ApplicationAccepted struct {
	ApplicationID ApplicationID `json:"application_id"`
	JobID         JobID         `json:"job_id"`
	JobTitle      string        `json:"job_title"`
	ApplicantID   UserID        `json:"applicant_id"`
}

// Event is the envelope carried over the realtime channel. Exactly one of
// Message and Hire is set, selected by Kind.
type Event struct {
	Kind    EventKind            `json:"kind"`
	Message *MessageReceived     `json:"message,omitempty"`
	Hire    *ApplicationAccepted `json:"hire,omitempty"`
}

func NewMessageEvent(m MessageReceived) Event {
	return Event{Kind: EventMessageReceived, Message: &m}
}

func NewHireEvent(h ApplicationAccepted) Event {
	return Event{Kind: EventApplicationAccepted, Hire: &h}
}
