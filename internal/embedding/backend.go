// Package embedding provides the dense-vector embedding capability used for
// semantic similarity scoring, with one-time lazy initialization and a hard
// timeout around inference so a hung backend degrades instead of stalling
// requests.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

// ErrUnavailable is returned when no embedding backend could be initialized.
// Callers are expected to degrade to a non-embedding similarity path.
var ErrUnavailable = errors.New("embedding backend unavailable")

// DefaultEmbedTimeout bounds a single inference call.
const DefaultEmbedTimeout = 15 * time.Second

// Backend produces dense vector embeddings for a batch of texts.
// Implementations must be safe for concurrent use.
type Backend interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// InitFunc constructs a Backend. It is invoked at most once, on first use.
type InitFunc func(ctx context.Context) (Backend, error)

// Lazy wraps a Backend with one-time initialization. The first Embed call
// runs the init function; if it fails, the failure is logged once and every
// later call returns ErrUnavailable without retrying. Initialization is
// guarded by sync.Once so concurrent first use is indistinguishable from
// sequential use.
type Lazy struct {
	initFn  InitFunc
	timeout time.Duration

	once    sync.Once
	backend Backend
	initErr error
}

// NewLazy creates a lazily-initialized backend with the default inference
// timeout. A nil init function yields a permanently unavailable backend.
func NewLazy(initFn InitFunc) *Lazy {
	return &Lazy{initFn: initFn, timeout: DefaultEmbedTimeout}
}

// WithTimeout overrides the per-call inference timeout.
func (l *Lazy) WithTimeout(timeout time.Duration) *Lazy {
	l.timeout = timeout
	return l
}

// Embed initializes the underlying backend on first use and delegates to it
// with a bounded context.
func (l *Lazy) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	l.once.Do(func() {
		if l.initFn == nil {
			l.initErr = ErrUnavailable
			return
		}
		backend, err := l.initFn(ctx)
		if err != nil {
			log.Printf("[embedding] backend initialization failed, semantic scoring degrades to word overlap: %v", err)
			l.initErr = fmt.Errorf("%w: %v", ErrUnavailable, err)
			return
		}
		l.backend = backend
	})

	if l.initErr != nil {
		return nil, l.initErr
	}

	callCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	return l.backend.Embed(callCtx, texts)
}

// Available reports whether a backend has been initialized successfully.
// It never triggers initialization.
func (l *Lazy) Available() bool {
	return l.backend != nil && l.initErr == nil
}
