package tabs

import (
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
)

// Factory produces a fresh content provider for a new tab.
type Factory func() ContentProvider

// Descriptor describes an instantiable tab type.
type Descriptor struct {
	Name    string
	Icon    string
	Factory Factory
}

// Registry is the catalog of tab types offered by the new-tab menu.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Descriptor)}
}

// Register inserts d or replaces the descriptor with the same name. A
// replacement keeps the position of the first registration.
func (r *Registry) Register(d Descriptor) {
	if d.Name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[d.Name]; !ok {
		r.order = append(r.order, d.Name)
	}
	r.byName[d.Name] = d
}

// Create invokes the factory registered under name.
func (r *Registry) Create(name string) (ContentProvider, bool) {
	d, ok := r.Lookup(name)
	if !ok || d.Factory == nil {
		return nil, false
	}
	content := d.Factory()
	if content == nil {
		return nil, false
	}
	return content, true
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byName[name]
	return d, ok
}

// List returns the descriptors in registration order.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}

// maxSuggestDistance caps how far a suggestion may be from the input.
const maxSuggestDistance = 3

// Suggest returns the registered name closest to name, compared case
// insensitively. Ties go to the earlier registration.
func (r *Registry) Suggest(name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	best, bestDist := "", maxSuggestDistance+1
	for _, candidate := range r.order {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(candidate))
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
