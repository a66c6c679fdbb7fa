package registry

import "sync"

// Map is a thread-safe generic registry keyed by name
type Map[T any] struct {
	mux   sync.RWMutex
	m     map[string]T
	names []string
}

// New creates a new instance of Map
func New[T any]() *Map[T] {
	return &Map[T]{
		m: make(map[string]T),
	}
}

// Get retrieves an item by name
func (r *Map[T]) Get(name string) (T, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	v, ok := r.m[name]
	return v, ok
}

// Set adds or updates an item by name. The first registration fixes the
// item's position in List and Names output.
func (r *Map[T]) Set(name string, value T) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.m[name]; !ok {
		r.names = append(r.names, name)
	}
	r.m[name] = value
}

// Delete removes an item by name
func (r *Map[T]) Delete(name string) {
	r.mux.Lock()
	defer r.mux.Unlock()
	if _, ok := r.m[name]; !ok {
		return
	}
	delete(r.m, name)
	for i, candidate := range r.names {
		if candidate == name {
			r.names = append(r.names[:i], r.names[i+1:]...)
			break
		}
	}
}

// Names returns all registered names in registration order
func (r *Map[T]) Names() []string {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]string, len(r.names))
	copy(ret, r.names)
	return ret
}

// List returns a slice of all items in registration order
func (r *Map[T]) List() []T {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]T, 0, len(r.names))
	for _, name := range r.names {
		ret = append(ret, r.m[name])
	}
	return ret
}

// Len returns the number of registered items
func (r *Map[T]) Len() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.names)
}
