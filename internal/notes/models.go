package notes

import "time"

type Kind string

const (
	KindTask     Kind = "task"
	KindReminder Kind = "reminder"
	KindJournal  Kind = "journal"
)

type Note struct {
	ID          int       `json:"id"`
	Text        string    `json:"text"`
	Kind        Kind      `json:"kind"`
	InputMethod string    `json:"input_method"`
	CreatedAt   time.Time `json:"created_at"`
}
