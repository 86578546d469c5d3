package reminders

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusSent     Status = "sent"
	StatusFailed   Status = "failed"
	StatusDone     Status = "done"
	StatusCanceled Status = "canceled"
)

type Reminder struct {
	ID          int       `json:"id"`
	Key         string    `json:"key"`
	UserID      int       `json:"-"`
	NoteID      *int      `json:"note_id,omitempty"`
	Message     string    `json:"message"`
	RemindAt    time.Time `json:"remind_at"`
	DisplayText string    `json:"display_text"`
	IsPrecise   bool      `json:"is_precise"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
