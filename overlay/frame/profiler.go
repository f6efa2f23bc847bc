package frame

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Profiler accumulates CPU time per named scope across frames.
type Profiler struct {
	Totals     map[string]time.Duration
	Calls      map[string]int
	StartTimes map[string]time.Time
	Counts     map[string]int
	Order      []string
	now        func() time.Time
}

func NewProfiler() *Profiler {
	return &Profiler{
		Totals:     make(map[string]time.Duration),
		Calls:      make(map[string]int),
		StartTimes: make(map[string]time.Time),
		Counts:     make(map[string]int),
		now:        time.Now,
	}
}

func (p *Profiler) BeginScope(name string) {
	if _, seen := p.Calls[name]; !seen {
		p.Order = append(p.Order, name)
		p.Calls[name] = 0
	}
	p.StartTimes[name] = p.now()
}

func (p *Profiler) EndScope(name string) {
	start, ok := p.StartTimes[name]
	if !ok {
		return
	}
	delete(p.StartTimes, name)
	p.Totals[name] += p.now().Sub(start)
	p.Calls[name]++
}

func (p *Profiler) SetCount(name string, count int) {
	p.Counts[name] = count
}

// Average is the mean duration of a scope, or 0 if it never closed.
func (p *Profiler) Average(name string) time.Duration {
	calls := p.Calls[name]
	if calls == 0 {
		return 0
	}
	return p.Totals[name] / time.Duration(calls)
}

func (p *Profiler) StatsString() string {
	var sb strings.Builder

	sb.WriteString("Timings (CPU, avg per frame):\n")
	for _, name := range p.Order {
		ms := float64(p.Average(name).Microseconds()) / 1000.0
		sb.WriteString(fmt.Sprintf("  %-10s: %.2f ms (%d)\n", name, ms, p.Calls[name]))
	}

	keys := make([]string, 0, len(p.Counts))
	for k := range p.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	sb.WriteString("Counts:\n")
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %-10s: %d\n", k, p.Counts[k]))
	}
	return sb.String()
}
