package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	pending []Reminder
	sent    []int
	failed  []int
}

func (f *fakeSource) GetPending(_ context.Context, now time.Time) ([]Reminder, error) {
	var due []Reminder
	for _, r := range f.pending {
		if !r.RemindAt.After(now) {
			due = append(due, r)
		}
	}
	return due, nil
}

func (f *fakeSource) MarkSent(_ context.Context, id int) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeSource) MarkFailed(_ context.Context, id int) error {
	f.failed = append(f.failed, id)
	return nil
}

type recordingSender struct {
	got  []Notification
	fail bool
}

func (s *recordingSender) Send(_ context.Context, n Notification) error {
	if s.fail {
		return errors.New("gateway down")
	}
	s.got = append(s.got, n)
	return nil
}

func TestSweepSendsDueReminders(t *testing.T) {
	now := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	src := &fakeSource{pending: []Reminder{
		{ID: 1, Key: "k1", UserID: 7, Message: "call dentist", RemindAt: now.Add(-time.Minute)},
		{ID: 2, Key: "k2", UserID: 7, Message: "water plants", RemindAt: now.Add(time.Hour)},
	}}
	sender := &recordingSender{}

	d := &Dispatcher{Source: src, Sender: sender, Now: func() time.Time { return now }}
	d.Sweep(context.Background())

	require.Len(t, sender.got, 1)
	assert.Equal(t, "call dentist", sender.got[0].Message)
	assert.Equal(t, 7, sender.got[0].UserID)
	assert.Equal(t, []int{1}, src.sent)
	assert.Empty(t, src.failed)
}

func TestSweepMarksFailedOnSendError(t *testing.T) {
	now := time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)
	src := &fakeSource{pending: []Reminder{
		{ID: 3, UserID: 1, Message: "pay rent", RemindAt: now.Add(-time.Second)},
	}}
	sender := &recordingSender{fail: true}

	d := &Dispatcher{Source: src, Sender: sender, Now: func() time.Time { return now }}
	d.Sweep(context.Background())

	assert.Empty(t, src.sent)
	assert.Equal(t, []int{3}, src.failed)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	src := &fakeSource{}
	d := &Dispatcher{Source: src, Sender: &recordingSender{}, Interval: time.Millisecond, Now: time.Now}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		d.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("dispatcher did not stop")
	}
}
