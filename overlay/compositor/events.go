package compositor

// Event is one queued compositor notification.
type Event interface {
	deliver(h Handler)
}

type ConfigureEvent struct {
	Width  uint32
	Height uint32
	Serial uint32
}

type ClosedEvent struct{}

type OutputEventKind int

const (
	OutputAdded OutputEventKind = iota
	OutputUpdated
	OutputRemoved
)

type OutputEvent struct {
	Kind        OutputEventKind
	Name        string
	Width       int
	Height      int
	RefreshRate int
}

type ScaleEvent struct {
	X, Y float32
}

func (e ConfigureEvent) deliver(h Handler) { h.Configure(e) }
func (ClosedEvent) deliver(h Handler)      { h.Closed() }
func (e OutputEvent) deliver(h Handler)    { h.OutputChanged(e) }
func (e ScaleEvent) deliver(h Handler)     { h.ScaleChanged(e) }

// Queue buffers events raised by platform callbacks until the next Dispatch.
type Queue struct {
	events []Event
}

func (q *Queue) Push(e Event) { q.events = append(q.events, e) }

func (q *Queue) Len() int { return len(q.events) }

// Drain delivers queued events in arrival order and returns how many were
// delivered. Events pushed by a handler during Drain are delivered too.
func (q *Queue) Drain(h Handler) int {
	n := 0
	for len(q.events) > 0 {
		e := q.events[0]
		q.events = q.events[1:]
		e.deliver(h)
		n++
	}
	q.events = nil
	return n
}
