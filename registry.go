package props

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]any)
	registryMu sync.RWMutex
)

// Use returns the process-wide mapper for T, building it on first use.
//
// The shared mapper starts with default configuration. Setters called on it
// affect every caller of Use[T]; build a private mapper with NewMapper when
// configuration must not be shared.
func Use[T any]() (*Mapper[T], error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[typ]; ok {
		registryMu.RUnlock()
		return cached.(*Mapper[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[typ]; ok {
		return cached.(*Mapper[T]), nil
	}

	m, err := NewMapper[T]()
	if err != nil {
		return nil, err
	}

	registry[typ] = m
	return m, nil
}

// Reset clears the mapper registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]any)
}
