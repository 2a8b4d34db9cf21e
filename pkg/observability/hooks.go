// Package observability provides hooks for metrics, tracing, and logging.
//
// Instrumentation is optional and backend-neutral. Consumers register hooks
// at startup and receive events about pipeline stages and file I/O.
//
// # Architecture
//
//   - Hook interfaces per event category
//   - No-op default implementations
//   - Registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, so library packages stay
// free of observability frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetPipelineHooks(&myPipelineHooks{})
//	    observability.SetIOHooks(&myIOHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Pipeline().OnRenderStart(ctx, title)
//	// ... build the scene ...
//	observability.Pipeline().OnRenderComplete(ctx, cells, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Pipeline Hooks
// =============================================================================

// PipelineHooks receives events from the rendering pipeline.
type PipelineHooks interface {
	// Load events; source is a config path or "builtin".
	OnLoadStart(ctx context.Context, source string)
	OnLoadComplete(ctx context.Context, source string, duration time.Duration, err error)

	// Scene events
	OnRenderStart(ctx context.Context, title string)
	OnRenderComplete(ctx context.Context, cells int, duration time.Duration, err error)

	// Encoding events
	OnExportStart(ctx context.Context, formats []string)
	OnExportComplete(ctx context.Context, formats []string, bytes int, duration time.Duration, err error)
}

// =============================================================================
// IO Hooks
// =============================================================================

// IOHooks receives events from file reads and writes.
type IOHooks interface {
	// OnRead records a file read.
	OnRead(ctx context.Context, path string, size int, err error)

	// OnWrite records a file write.
	OnWrite(ctx context.Context, path string, size int, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks is a no-op implementation of PipelineHooks.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnLoadStart(context.Context, string)                          {}
func (NoopPipelineHooks) OnLoadComplete(context.Context, string, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string)                        {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, int, time.Duration, error)  {}
func (NoopPipelineHooks) OnExportStart(context.Context, []string)                      {}
func (NoopPipelineHooks) OnExportComplete(context.Context, []string, int, time.Duration, error) {
}

// NoopIOHooks is a no-op implementation of IOHooks.
type NoopIOHooks struct{}

func (NoopIOHooks) OnRead(context.Context, string, int, error)  {}
func (NoopIOHooks) OnWrite(context.Context, string, int, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	pipelineHooks PipelineHooks = NoopPipelineHooks{}
	ioHooks       IOHooks       = NoopIOHooks{}
	hooksMu       sync.RWMutex
)

// SetPipelineHooks registers custom pipeline hooks.
// This should be called once at application startup before any pipeline operations.
func SetPipelineHooks(h PipelineHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		pipelineHooks = h
	}
}

// SetIOHooks registers custom I/O hooks.
func SetIOHooks(h IOHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		ioHooks = h
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return pipelineHooks
}

// IO returns the registered I/O hooks.
func IO() IOHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return ioHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	pipelineHooks = NoopPipelineHooks{}
	ioHooks = NoopIOHooks{}
}
