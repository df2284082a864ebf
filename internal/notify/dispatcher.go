package notify

import (
	"sync"

	"go.uber.org/zap"
)

// Event identifies a notification kind.
type Event string

const (
	EventLowStock            Event = "lowStock"
	EventTransactionComplete Event = "transactionComplete"
)

// LowStockAlert is raised after a committed mutation leaves stock at or below
// the configured threshold. NewStock is the post-update value.
type LowStockAlert struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	NewStock  int    `json:"newStock"`
	Threshold int    `json:"threshold"`
}

// TransactionCompleted is a snapshot of a recorded transaction. Observers read
// this snapshot; they never re-query inside the mutation's scope.
type TransactionCompleted struct {
	TransactionID string `json:"transactionId"`
	ProductID     string `json:"productId"`
	CustomerID    string `json:"customerId,omitempty"`
	Type          string `json:"type"`
	Quantity      int    `json:"quantity"`
	UnitPrice     int64  `json:"unitPrice"`
	TotalAmount   int64  `json:"totalAmount"`
	NewStock      int    `json:"newStock"`
}

// Observer handles a dispatched event payload.
type Observer func(payload interface{})

// Dispatcher maps event kinds to ordered observer lists. Dispatch is
// synchronous and in-process: every observer runs in registration order on the
// caller's goroutine before Dispatch returns. Observer panics are recovered
// and logged, never propagated; notifications are a best-effort side channel,
// not part of the consistency boundary.
type Dispatcher struct {
	mu        sync.RWMutex
	observers map[Event][]Observer
	log       *zap.Logger
}

func NewDispatcher(log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		observers: make(map[Event][]Observer),
		log:       log,
	}
}

// Subscribe appends an observer to the event's list.
func (d *Dispatcher) Subscribe(event Event, obs Observer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.observers[event] = append(d.observers[event], obs)
}

// Dispatch invokes every observer registered for the event, in order.
func (d *Dispatcher) Dispatch(event Event, payload interface{}) {
	d.mu.RLock()
	observers := make([]Observer, len(d.observers[event]))
	copy(observers, d.observers[event])
	d.mu.RUnlock()

	for _, obs := range observers {
		d.invoke(event, obs, payload)
	}
}

func (d *Dispatcher) invoke(event Event, obs Observer, payload interface{}) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("notification observer panicked",
				zap.String("event", string(event)),
				zap.Any("panic", r),
			)
		}
	}()
	obs(payload)
}
