package kernel

import (
	"fmt"
	"sort"
	"sync"

	"github.com/cwbudde/algo-dispatch/internal/cpu"
	"github.com/cwbudde/algo-dispatch/ndarray"
)

// Registry manages kernel variants.
//
// Arch packages register from init(). Lookup is safe for concurrent use; all
// registrations should complete before the first Lookup.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool // entries ordered by name, then priority (descending)
}

// Global is the registry the dispatcher uses.
var Global = &Registry{}

// Register adds a variant. The entry needs a name, a variant name and at least
// one op; a (Name, Variant) pair may be registered once.
func (r *Registry) Register(entry Entry) error {
	if entry.Name == "" || entry.Variant == "" {
		return fmt.Errorf("%w: empty name or variant", ErrInvalidEntry)
	}
	if entry.F32I32 == nil && entry.F32I64 == nil && entry.F64I32 == nil && entry.F64I64 == nil {
		return fmt.Errorf("%w: %s/%s has no ops", ErrInvalidEntry, entry.Name, entry.Variant)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.entries {
		if r.entries[i].Name == entry.Name && r.entries[i].Variant == entry.Variant {
			return fmt.Errorf("%w: %s/%s already registered", ErrInvalidEntry, entry.Name, entry.Variant)
		}
	}
	r.entries = append(r.entries, entry)
	r.sorted = false
	return nil
}

// MustRegister is Register that panics on error, for use in init().
func (r *Registry) MustRegister(entry Entry) {
	if err := r.Register(entry); err != nil {
		panic(err)
	}
}

// Lookup returns the highest-priority variant of name that implements the
// (value, index) pair and whose SIMD level features support.
func (r *Registry) Lookup(name string, features cpu.Features, value, index ndarray.Kind) (Entry, error) {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	found := false
	for i := range r.entries {
		e := &r.entries[i]
		if e.Name != name {
			continue
		}
		found = true
		if e.Supports(value, index) && cpu.Supports(features, e.SIMDLevel) {
			return *e, nil
		}
	}
	if !found {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
	return Entry{}, fmt.Errorf("%w: %s %s/%s", ErrNoVariant, name, value, index)
}

// LookupVariant returns the named variant of a kernel regardless of CPU
// features. It still requires the type pair.
func (r *Registry) LookupVariant(name, variant string, value, index ndarray.Kind) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := false
	for i := range r.entries {
		e := &r.entries[i]
		if e.Name != name {
			continue
		}
		found = true
		if e.Variant == variant && e.Supports(value, index) {
			return *e, nil
		}
	}
	if !found {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownKernel, name)
	}
	return Entry{}, fmt.Errorf("%w: %s/%s %s/%s", ErrNoVariant, name, variant, value, index)
}

// Names returns the distinct kernel names in sorted order.
func (r *Registry) Names() []string {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for i := range r.entries {
		if n := len(names); n == 0 || names[n-1] != r.entries[i].Name {
			names = append(names, r.entries[i].Name)
		}
	}
	return names
}

// ListEntries returns a copy of all entries, ordered by name and then by
// descending priority.
func (r *Registry) ListEntries() []Entry {
	r.sort()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

func (r *Registry) sort() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sorted {
		return
	}
	sort.SliceStable(r.entries, func(i, j int) bool {
		a, b := r.entries[i], r.entries[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Priority > b.Priority
	})
	r.sorted = true
}
