package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"annid/internal/model"
)

// DefaultCheckSpec runs the reminder check once per minute. The firing
// window in the scheduling core is five minutes wide, so a due reminder can
// match on several consecutive ticks; the Checker deduplicates those.
const DefaultCheckSpec = "* * * * *"

// Event is one reminder that is due right now.
type Event struct {
	RecordID string
	Name     string
	Category string
	DueDate  time.Time
	DaysLeft int
	FiredAt  time.Time
}

// Source supplies the records to evaluate on each tick. The Checker never
// writes back.
type Source interface {
	ActiveAnniversaries(ctx context.Context) ([]model.Anniversary, error)
}

// Checker is the periodic driver around the pure scheduling core: a cron
// job pulls the active records, evaluates them against a single instant,
// and emits due reminders on a buffered channel. Emission never blocks; a
// slow consumer drops events and bumps a counter.
type Checker struct {
	cron   *cron.Cron
	source Source
	log    *logrus.Logger
	spec   string
	out    chan Event

	mu       sync.Mutex
	fired    map[string]struct{}
	firedDay string
	started  bool
	stopped  bool

	dropped uint64
	now     func() time.Time
}

func NewChecker(source Source, log *logrus.Logger, spec string, bufferSize int) *Checker {
	if spec == "" {
		spec = DefaultCheckSpec
	}
	if bufferSize <= 0 {
		bufferSize = 1
	}
	if log == nil {
		log = logrus.New()
	}
	return &Checker{
		cron:   cron.New(),
		source: source,
		log:    log,
		spec:   spec,
		out:    make(chan Event, bufferSize),
		fired:  make(map[string]struct{}),
		now:    time.Now,
	}
}

func (c *Checker) C() <-chan Event {
	return c.out
}

func (c *Checker) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return nil
	}
	if c.source == nil {
		return errors.New("scheduler: nil source")
	}
	if _, err := c.cron.AddFunc(c.spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		c.Tick(ctx)
	}); err != nil {
		return fmt.Errorf("scheduler: add check job: %w", err)
	}
	c.started = true
	c.cron.Start()
	c.log.WithField("spec", c.spec).Info("reminder checker started")
	return nil
}

func (c *Checker) Stop() {
	c.mu.Lock()
	if !c.started || c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	c.mu.Unlock()

	<-c.cron.Stop().Done()
	close(c.out)
	c.log.Info("reminder checker stopped")
}

func (c *Checker) Dropped() uint64 {
	return atomic.LoadUint64(&c.dropped)
}

// Tick runs one evaluation pass. Normally invoked by the cron job, but safe
// to call directly for an on-demand check.
func (c *Checker) Tick(ctx context.Context) {
	now := c.now()
	records, err := c.source.ActiveAnniversaries(ctx)
	if err != nil {
		c.log.WithError(err).Warn("reminder check: loading records failed")
		return
	}

	events := Evaluate(records, now)
	emitted := 0
	for _, ev := range events {
		if !c.markFired(ev) {
			continue
		}
		select {
		case c.out <- ev:
			emitted++
		default:
			atomic.AddUint64(&c.dropped, 1)
		}
	}
	c.log.WithFields(logrus.Fields{
		"records": len(records),
		"due":     len(events),
		"emitted": emitted,
	}).Debug("reminder check complete")
}

// Evaluate applies the scheduling core to every record at a single instant.
// Pure: same records and now give the same events.
func Evaluate(records []model.Anniversary, now time.Time) []Event {
	out := make([]Event, 0)
	for _, rec := range records {
		if rec.Trashed() {
			continue
		}
		if !rec.ShouldNotifyNow(now) {
			continue
		}
		due, ok := rec.NextDueDate(now)
		if !ok {
			continue
		}
		days, ok := rec.DaysUntil(now)
		if !ok {
			continue
		}
		out = append(out, Event{
			RecordID: rec.ID,
			Name:     rec.Name,
			Category: string(rec.Category),
			DueDate:  due,
			DaysLeft: days,
			FiredAt:  now,
		})
	}
	return out
}

// markFired records the event key and reports whether it was new. Keys are
// scoped to the firing day so the same reminder fires again on its next
// qualifying date; the set resets when the day rolls over.
func (c *Checker) markFired(ev Event) bool {
	day := ev.FiredAt.Format("2006-01-02")
	key := fmt.Sprintf("%s|%s|%d", ev.RecordID, ev.DueDate.Format("2006-01-02"), ev.DaysLeft)

	c.mu.Lock()
	defer c.mu.Unlock()
	if day != c.firedDay {
		c.fired = make(map[string]struct{})
		c.firedDay = day
	}
	if _, seen := c.fired[key]; seen {
		return false
	}
	c.fired[key] = struct{}{}
	return true
}
