package compositor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingHandler struct {
	calls []string
	cfgs  []ConfigureEvent
	queue *Queue
}

func (h *recordingHandler) Configure(ev ConfigureEvent) {
	h.calls = append(h.calls, "configure")
	h.cfgs = append(h.cfgs, ev)
	if h.queue != nil && ev.Serial == 1 {
		h.queue.Push(ClosedEvent{})
	}
}
func (h *recordingHandler) Closed()                   { h.calls = append(h.calls, "closed") }
func (h *recordingHandler) OutputChanged(OutputEvent) { h.calls = append(h.calls, "output") }
func (h *recordingHandler) ScaleChanged(ScaleEvent)   { h.calls = append(h.calls, "scale") }

func TestQueueDrainsInOrder(t *testing.T) {
	var q Queue
	q.Push(OutputEvent{Kind: OutputAdded, Name: "DP-1"})
	q.Push(ConfigureEvent{Width: 1920, Height: 1080, Serial: 1})
	q.Push(ScaleEvent{X: 2, Y: 2})
	q.Push(ConfigureEvent{Width: 800, Height: 600, Serial: 2})
	q.Push(ClosedEvent{})

	h := &recordingHandler{}
	assert.Equal(t, 5, q.Drain(h))
	assert.Equal(t, []string{"output", "configure", "scale", "configure", "closed"}, h.calls)
	assert.Equal(t, []ConfigureEvent{{1920, 1080, 1}, {800, 600, 2}}, h.cfgs)
	assert.Zero(t, q.Len())
	assert.Zero(t, q.Drain(h))
}

func TestQueueDeliversEventsPushedDuringDrain(t *testing.T) {
	var q Queue
	h := &recordingHandler{queue: &q}
	q.Push(ConfigureEvent{Serial: 1})

	assert.Equal(t, 2, q.Drain(h))
	assert.Equal(t, []string{"configure", "closed"}, h.calls)
}
