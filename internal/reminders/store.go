package reminders

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	DB *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{DB: db}
}

// Create inserts a pending reminder. The generated key lets the client retry
// the create without double-scheduling.
func (s *Store) Create(ctx context.Context, rem *Reminder) error {
	if rem.Key == "" {
		rem.Key = uuid.NewString()
	}
	rem.Status = StatusPending

	return s.DB.QueryRowContext(ctx, `
		INSERT INTO reminders (key, user_id, note_id, message, remind_at, display_text, is_precise, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (key) DO UPDATE SET key = reminders.key
		RETURNING id, created_at
	`, rem.Key, rem.UserID, rem.NoteID, rem.Message, rem.RemindAt, rem.DisplayText, rem.IsPrecise, rem.Status).
		Scan(&rem.ID, &rem.CreatedAt)
}

// ListUpcoming returns the caller's reminders, pending first, nearest first.
func (s *Store) ListUpcoming(ctx context.Context, userID int) ([]Reminder, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, key, user_id, note_id, message, remind_at, display_text, is_precise, status, created_at
		FROM reminders
		WHERE user_id = $1 AND status IN ('pending', 'sent', 'failed')
		ORDER BY (status = 'pending') DESC, remind_at ASC
		LIMIT 100
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReminders(rows)
}

// GetPending returns reminders that are due for delivery: pending (or failed,
// so delivery is retried on the next sweep) with remind_at at or before now.
func (s *Store) GetPending(ctx context.Context, now time.Time) ([]Reminder, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, key, user_id, note_id, message, remind_at, display_text, is_precise, status, created_at
		FROM reminders
		WHERE status IN ('pending', 'failed') AND remind_at <= $1
		ORDER BY remind_at ASC
		LIMIT 500
	`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanReminders(rows)
}

func (s *Store) MarkSent(ctx context.Context, id int) error {
	_, err := s.DB.ExecContext(ctx, `UPDATE reminders SET status='sent' WHERE id=$1`, id)
	return err
}

func (s *Store) MarkFailed(ctx context.Context, id int) error {
	_, err := s.DB.ExecContext(ctx, `UPDATE reminders SET status='failed' WHERE id=$1`, id)
	return err
}

// MarkDone flips any non-canceled reminder of the user to done.
func (s *Store) MarkDone(ctx context.Context, userID, id int) (bool, error) {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE reminders SET status='done'
		WHERE id=$1 AND user_id=$2 AND status <> 'canceled'
	`, id, userID)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// Reschedule moves a reminder and resets it to pending.
func (s *Store) Reschedule(ctx context.Context, userID, id int, remindAt time.Time, displayText string, isPrecise bool) (bool, error) {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE reminders
		SET remind_at=$3, display_text=$4, is_precise=$5, status='pending'
		WHERE id=$1 AND user_id=$2
	`, id, userID, remindAt, displayText, isPrecise)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// CompletionStats reports how many of the user's delivered reminders were
// marked done. Feeds the pattern heuristics.
func (s *Store) CompletionStats(ctx context.Context, userID int) (done, delivered int, err error) {
	err = s.DB.QueryRowContext(ctx, `
		SELECT
			COUNT(*) FILTER (WHERE status = 'done'),
			COUNT(*) FILTER (WHERE status IN ('sent', 'done'))
		FROM reminders
		WHERE user_id = $1
	`, userID).Scan(&done, &delivered)
	return done, delivered, err
}

func scanReminders(rows *sql.Rows) ([]Reminder, error) {
	var out []Reminder
	for rows.Next() {
		var rem Reminder
		var noteID sql.NullInt64
		if err := rows.Scan(
			&rem.ID, &rem.Key, &rem.UserID, &noteID, &rem.Message,
			&rem.RemindAt, &rem.DisplayText, &rem.IsPrecise, &rem.Status, &rem.CreatedAt,
		); err != nil {
			return nil, err
		}
		if noteID.Valid {
			n := int(noteID.Int64)
			rem.NoteID = &n
		}
		out = append(out, rem)
	}
	return out, rows.Err()
}
