package event

// Handler is the interface for handling domain events.
type Handler interface {
	Handle(event Event) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(event Event) error

// Handle calls f(event).
func (f HandlerFunc) Handle(event Event) error {
	return f(event)
}

// Dispatcher routes events to handlers registered by event name.
// It is the consumer side of an entity's pending-event buffer: application code
// drains DomainEvents() into Dispatch and then clears the entity.
//
// Registration is expected to happen during startup; Dispatcher is not safe for
// concurrent Register/Dispatch.
type Dispatcher struct {
	handlers map[string][]Handler
}

// NewDispatcher creates a new event dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]Handler),
	}
}

// Register registers a handler for a specific event name.
func (d *Dispatcher) Register(eventName string, handler Handler) {
	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

// Dispatch dispatches an event to all registered handlers.
// Events with no registered handler are silently dropped.
func (d *Dispatcher) Dispatch(e Event) error {
	handlers, ok := d.handlers[e.EventName()]
	if !ok {
		return nil
	}

	for _, handler := range handlers {
		if err := handler.Handle(e); err != nil {
			return err
		}
	}
	return nil
}

// DispatchAll dispatches multiple events in order, stopping at the first error.
func (d *Dispatcher) DispatchAll(events []Event) error {
	for _, e := range events {
		if err := d.Dispatch(e); err != nil {
			return err
		}
	}
	return nil
}
