package events

import (
	"context"

	"github.com/magpress/payment-service/internal/models"
	"github.com/sirupsen/logrus"
)

// ObserverFunc handles one charge outcome. An error aborts only that
// observer's effects; the remaining observers still run.
type ObserverFunc func(ctx context.Context, outcome models.ChargeOutcome) error

type observer struct {
	name     string
	priority int
	handle   ObserverFunc
}

// OutcomeBus delivers charge outcomes to a fixed set of observers in
// descending priority order. Observers are registered once, at startup;
// Fire may then be called from any goroutine.
type OutcomeBus struct {
	observers []observer
}

func NewOutcomeBus() *OutcomeBus {
	return &OutcomeBus{}
}

// Register adds an observer. Higher priority runs first; ties keep
// registration order.
func (b *OutcomeBus) Register(name string, priority int, fn ObserverFunc) {
	entry := observer{name: name, priority: priority, handle: fn}

	insert := len(b.observers)
	for i, existing := range b.observers {
		if entry.priority > existing.priority {
			insert = i
			break
		}
	}

	b.observers = append(b.observers, observer{})
	copy(b.observers[insert+1:], b.observers[insert:])
	b.observers[insert] = entry
}

// Fire invokes every observer for the outcome, in priority order. Observer
// errors are logged and isolated so a slow or broken side effect can never
// undo another observer's work.
func (b *OutcomeBus) Fire(ctx context.Context, outcome models.ChargeOutcome) {
	for _, o := range b.observers {
		if err := o.handle(ctx, outcome); err != nil {
			logrus.Errorf("outcome observer '%s' failed for subscriber %s: %s",
				o.name, outcome.SubscriberID, err.Error())
		}
	}
}
