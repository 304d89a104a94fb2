package bhasha

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ModelLoadFunc lazily constructs a model provider. Called at most once
// per engine under normal operation; concurrent first users share the same
// in-flight load.
type ModelLoadFunc func(ctx context.Context) (ModelProvider, error)

type modelLoader struct {
	load   ModelLoadFunc
	expiry time.Duration

	group singleflight.Group
	mu    sync.RWMutex
	p     ModelProvider
}

func newModelLoader(load ModelLoadFunc, expiry time.Duration) *modelLoader {
	return &modelLoader{load: load, expiry: expiry}
}

// get returns the loaded provider, loading it on first use. Requests that
// have waited past the expiry are rejected before and after the load: a
// stale translation is usually no longer useful to the caller.
func (l *modelLoader) get(ctx context.Context, queuedAt time.Time) (ModelProvider, error) {
	l.mu.RLock()
	p := l.p
	l.mu.RUnlock()
	if p != nil {
		return p, nil
	}

	if l.stale(queuedAt) {
		return nil, &StaleRequestError{Age: time.Since(queuedAt).Round(time.Millisecond).String()}
	}

	v, err, _ := l.group.Do("model", func() (interface{}, error) {
		p, err := l.load(ctx)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.p = p
		l.mu.Unlock()
		return p, nil
	})
	if err != nil {
		return nil, err
	}

	if l.stale(queuedAt) {
		return nil, &StaleRequestError{Age: time.Since(queuedAt).Round(time.Millisecond).String()}
	}
	return v.(ModelProvider), nil
}

func (l *modelLoader) stale(queuedAt time.Time) bool {
	return l.expiry > 0 && time.Since(queuedAt) > l.expiry
}

// loaded reports whether the provider has been constructed.
func (l *modelLoader) loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.p != nil
}
