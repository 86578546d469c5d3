package reminders

import (
	"context"
	"database/sql"
	"log"
	"time"

	"luna-assistant-backend/internal/analytics"
)

// pendingSource is what the dispatcher needs from the store. Narrow on
// purpose so tests can swap in a fake.
type pendingSource interface {
	GetPending(ctx context.Context, now time.Time) ([]Reminder, error)
	MarkSent(ctx context.Context, id int) error
	MarkFailed(ctx context.Context, id int) error
}

// Dispatcher sweeps for due reminders and hands them to the sender. Delivery
// guarantees live with the gateway/OS; a failed handoff stays due and is
// retried on the next sweep.
type Dispatcher struct {
	Source   pendingSource
	Sender   Sender
	Interval time.Duration
	Now      func() time.Time

	// optional, for firing analytics events
	DB *sql.DB
}

func NewDispatcher(store *Store, sender Sender, interval time.Duration) *Dispatcher {
	return &Dispatcher{
		Source:   store,
		Sender:   sender,
		Interval: interval,
		Now:      time.Now,
		DB:       store.DB,
	}
}

// Run blocks until ctx is canceled.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.Sweep(ctx)
		}
	}
}

// Sweep processes everything currently due. Exported so tests (and a future
// admin endpoint) can trigger one pass directly.
func (d *Dispatcher) Sweep(ctx context.Context) {
	now := d.Now()

	due, err := d.Source.GetPending(ctx, now)
	if err != nil {
		log.Println("dispatcher: fetch pending:", err)
		return
	}

	for _, rem := range due {
		if err := d.Sender.Send(ctx, Notification{
			UserID:      rem.UserID,
			ReminderKey: rem.Key,
			Message:     rem.Message,
			DisplayText: rem.DisplayText,
		}); err != nil {
			log.Printf("dispatcher: send reminder %d: %v", rem.ID, err)
			_ = d.Source.MarkFailed(ctx, rem.ID)
			continue
		}

		if err := d.Source.MarkSent(ctx, rem.ID); err != nil {
			log.Printf("dispatcher: mark sent %d: %v", rem.ID, err)
			continue
		}

		if d.DB != nil {
			env := analytics.Envelope{UserID: rem.UserID, Platform: "unknown"}
			props := map[string]any{
				"reminder_id": rem.ID,
				"is_precise":  rem.IsPrecise,
				"lag_seconds": int(now.Sub(rem.RemindAt).Seconds()),
			}
			_ = analytics.Log(ctx, d.DB, env, "reminder_fired", props, "")
		}
	}
}
