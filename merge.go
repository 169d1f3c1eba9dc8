package toolbelt

import "fmt"

// Merge combines registries into a new one. For a name defined in several
// inputs, the definition from the first registry in list order wins; later
// duplicates are dropped silently. Inputs are validated up front (empty list →
// ErrNoRegistries, nil member → ErrNilRegistry) and never mutated; the merged
// registry shares only the immutable Tool records, so it is fully independent.
func Merge(registries []*Registry) (*Registry, error) {
	if len(registries) == 0 {
		return nil, ErrNoRegistries
	}
	for i, reg := range registries {
		if reg == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilRegistry, i)
		}
	}
	merged := New()
	for _, reg := range registries {
		reg.mu.Lock()
		for _, name := range reg.names {
			if _, exists := merged.tools[name]; exists {
				continue
			}
			merged.tools[name] = reg.tools[name]
			merged.names = append(merged.names, name)
		}
		reg.mu.Unlock()
	}
	return merged, nil
}
