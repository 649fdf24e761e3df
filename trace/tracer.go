package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Tracer provides execution tracing for debugging
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if a statement kind matches any of the filter patterns
func (t *Tracer) matchesFilter(kind string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, kind); matched {
			return true
		}
	}
	return false
}

// Step logs one dispatched line
func (t *Tracer) Step(ip int, kind, line string) {
	if !t.enabled || !t.matchesFilter(kind) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] STEP %4d %-7s %s\n", ip+1, kind, line)
}

// Jump logs a control-flow transfer
func (t *Tracer) Jump(from, to int, reason string) {
	if !t.enabled {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] JUMP %d -> %d (%s)\n", from+1, to+1, reason)
}

// Select logs a current-register change
func (t *Tracer) Select(token string, slot int) {
	if !t.enabled {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] REG  %s (slot %d)\n", token, slot)
}

// Emit logs one output fragment
func (t *Tracer) Emit(fragment string) {
	if !t.enabled {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Truncate long fragments for readability
	display := fragment
	if len(display) > 60 {
		display = display[:57] + "..."
	}

	fmt.Fprintf(t.writer, "[TRACE]   EMIT %q\n", display)
}

// Fault logs the error that stopped the run
func (t *Tracer) Fault(ip int, err error) {
	if !t.enabled {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] FAULT at line %d: %v\n", ip+1, err)
}

// Global convenience functions

// Step logs a dispatched line using the global tracer
func Step(ip int, kind, line string) {
	if globalTracer != nil {
		globalTracer.Step(ip, kind, line)
	}
}

// Jump logs a control-flow transfer using the global tracer
func Jump(from, to int, reason string) {
	if globalTracer != nil {
		globalTracer.Jump(from, to, reason)
	}
}

// Select logs a current-register change using the global tracer
func Select(token string, slot int) {
	if globalTracer != nil {
		globalTracer.Select(token, slot)
	}
}

// Emit logs an output fragment using the global tracer
func Emit(fragment string) {
	if globalTracer != nil {
		globalTracer.Emit(fragment)
	}
}

// Fault logs a run-stopping error using the global tracer
func Fault(ip int, err error) {
	if globalTracer != nil {
		globalTracer.Fault(ip, err)
	}
}
