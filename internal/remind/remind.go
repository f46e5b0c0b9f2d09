// Package remind runs a periodic job that reports due-card counts per
// configured owner.
package remind

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"

	"revise/internal/scheduler"
)

// Notifier receives one due-count report per owner per tick.
type Notifier func(owner string, due int)

// Reminder periodically checks each owner's due count and notifies when
// cards are waiting.
type Reminder struct {
	svc      *scheduler.Service
	owners   []string
	interval time.Duration
	log      *slog.Logger
	notify   Notifier
	sched    *gocron.Scheduler
}

// New creates a Reminder. A nil notifier logs through the given logger.
func New(svc *scheduler.Service, owners []string, interval time.Duration, log *slog.Logger, notify Notifier) *Reminder {
	r := &Reminder{
		svc:      svc,
		owners:   owners,
		interval: interval,
		log:      log,
		notify:   notify,
		sched:    gocron.NewScheduler(time.UTC),
	}
	if r.notify == nil {
		r.notify = func(owner string, due int) {
			r.log.Info("cards due for review", "owner", owner, "due", due)
		}
	}
	return r
}

// Start schedules the periodic check and returns immediately.
func (r *Reminder) Start() error {
	if _, err := r.sched.Every(r.interval).Do(r.Check); err != nil {
		return fmt.Errorf("schedule reminder job: %w", err)
	}
	r.sched.StartAsync()
	return nil
}

// Stop halts the periodic check.
func (r *Reminder) Stop() {
	r.sched.Stop()
}

// Check runs one reminder pass over all configured owners.
func (r *Reminder) Check() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	for _, owner := range r.owners {
		st, err := r.svc.Stats(ctx, owner, now)
		if err != nil {
			r.log.Error("reminder stats failed", "owner", owner, "error", err)
			continue
		}
		if st.DueCards > 0 {
			r.notify(owner, st.DueCards)
		}
	}
}
