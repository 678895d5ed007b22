package assets

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps opaque photo references to live handles for one process.
// The reference string is what sessions persist; after a restart it simply
// fails to resolve, which downstream code treats as "no photo attached".
type Registry struct {
	mu     sync.RWMutex
	photos map[string]*Photo
}

// NewRegistry creates an empty photo registry.
func NewRegistry() *Registry {
	return &Registry{photos: make(map[string]*Photo)}
}

// Put registers a photo and returns its opaque reference. The registry
// takes over the caller's reference.
func (r *Registry) Put(p *Photo) string {
	ref := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.photos[ref] = p
	return ref
}

// Resolve returns the photo for a reference, or nil when the reference is
// unknown, empty, or no longer valid.
func (r *Registry) Resolve(ref string) *Photo {
	if ref == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.photos[ref]
}

// Remove drops a reference from the registry and releases its photo.
func (r *Registry) Remove(ref string) {
	r.mu.Lock()
	p, ok := r.photos[ref]
	delete(r.photos, ref)
	r.mu.Unlock()

	if ok {
		p.Release()
	}
}
