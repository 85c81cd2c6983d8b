package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"sport-store/storefront/order"
	"sport-store/storefront/types"
)

// Listener receives order lifecycle events. Listeners are compared by
// identity, so implementations should be pointer types.
type Listener interface {
	OnOrderEvent(ctx context.Context, o *order.Order, event types.EventType) error
}

// Notifier delivers events synchronously to its listeners in attachment order.
// A failing or panicking listener does not stop delivery to the others.
type Notifier struct {
	mu        sync.RWMutex
	listeners []Listener
	logger    *slog.Logger
}

func New(logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("Notification system initialized")
	return &Notifier{logger: logger}
}

// Attach adds l unless it is already attached
func (n *Notifier) Attach(l Listener) {
	if l == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.indexOf(l) >= 0 {
		return
	}
	n.listeners = append(n.listeners, l)
	n.logger.Info("Attached listener", "listener", listenerName(l))
}

// Detach removes l. Detaching a listener that is not attached is a no-op.
func (n *Notifier) Detach(l Listener) {
	n.mu.Lock()
	defer n.mu.Unlock()
	i := n.indexOf(l)
	if i < 0 {
		return
	}
	n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
	n.logger.Info("Detached listener", "listener", listenerName(l))
}

// Listeners returns the attached listeners in delivery order
func (n *Notifier) Listeners() []Listener {
	n.mu.RLock()
	defer n.mu.RUnlock()
	out := make([]Listener, len(n.listeners))
	copy(out, n.listeners)
	return out
}

// Notify delivers event to every listener attached at the time of the call.
// Listener failures are logged and returned joined.
func (n *Notifier) Notify(ctx context.Context, o *order.Order, event types.EventType) error {
	listeners := n.Listeners()
	n.logger.Info("Notifying listeners", "orderID", o.ID, "event", event, "listeners", len(listeners))

	var errs []error
	for _, l := range listeners {
		if err := n.deliver(ctx, l, o, event); err != nil {
			n.logger.Warn("Listener failed", "listener", listenerName(l), "orderID", o.ID, "event", event, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (n *Notifier) deliver(ctx context.Context, l Listener, o *order.Order, event types.EventType) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listener %s panicked: %v", listenerName(l), r)
		}
	}()
	return l.OnOrderEvent(ctx, o, event)
}

func (n *Notifier) indexOf(l Listener) int {
	for i, existing := range n.listeners {
		if sameListener(existing, l) {
			return i
		}
	}
	return -1
}

// sameListener compares by identity without panicking on non-comparable types
func sameListener(a, b Listener) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

func listenerName(l Listener) string {
	return reflect.TypeOf(l).String()
}
