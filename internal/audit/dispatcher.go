package audit

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	queueSize      = 100
	publishTimeout = 5 * time.Second
)

// Dispatcher queues events for a single worker. Dispatch never blocks: when
// the queue is full the event is dropped.
type Dispatcher struct {
	pub   Publisher
	queue chan Event
	wg    sync.WaitGroup
	once  sync.Once
}

func NewDispatcher(pub Publisher) *Dispatcher {
	d := &Dispatcher{
		pub:   pub,
		queue: make(chan Event, queueSize),
	}
	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		if err := d.pub.Publish(ctx, ev); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"entity": ev.Entity,
				"id":     ev.EntityID,
			}).Error("audit publish failed")
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	select {
	case d.queue <- ev:
	default:
		logrus.WithField("entity", ev.Entity).Warn("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queue to drain.
// Dispatch must not be called after Close.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.queue) })
	d.wg.Wait()
}
