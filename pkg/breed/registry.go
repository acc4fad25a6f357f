package breed

import (
	"encoding/json"
	"fmt"
)

// Registry is an arena of breeds indexed by code. Entries keep their
// address for the life of the registry, so a merge is visible through every
// pointer previously returned. A Registry is not safe for concurrent use.
type Registry struct {
	order  []*Breed
	byCode map[int]*Breed
}

// NewRegistry creates a registry seeded with the known breeds
func NewRegistry() *Registry {
	r := &Registry{byCode: make(map[int]*Breed, len(seeds))}
	for _, s := range seeds {
		b := s
		r.add(&b)
	}
	return r
}

func (r *Registry) add(b *Breed) {
	r.order = append(r.order, b)
	r.byCode[b.Code] = b
}

// Lookup returns the breed with the given code
func (r *Registry) Lookup(code int) (*Breed, bool) {
	b, ok := r.byCode[code]
	return b, ok
}

// Resolve returns the breed with the given code, or the unknown breed
func (r *Registry) Resolve(code int) *Breed {
	if b, ok := r.byCode[code]; ok {
		return b
	}
	return r.unknown()
}

func (r *Registry) unknown() *Breed {
	if b, ok := r.byCode[UnknownCode]; ok {
		return b
	}
	// Only reachable after the sentinel was removed by an unmarshal
	b := seedFor(UnknownCode)
	r.add(&b)
	return r.byCode[UnknownCode]
}

// Equivalent resolves the equivalent breed of b
func (r *Registry) Equivalent(b *Breed) *Breed {
	return r.Resolve(b.EquivalentCode)
}

// Merge folds b into the registry. An existing entry with the same code
// takes every field of b except its code, name, type and imported flag;
// otherwise b is added. The returned entry is the one held by the registry.
func (r *Registry) Merge(b Breed) (entry *Breed, merged bool) {
	if existing, ok := r.byCode[b.Code]; ok {
		existing.mergeFrom(&b)
		return existing, true
	}
	r.add(&b)
	return r.byCode[b.Code], false
}

// Len returns the number of breeds
func (r *Registry) Len() int {
	return len(r.order)
}

// All returns every breed in insertion order
func (r *Registry) All() []*Breed {
	out := make([]*Breed, len(r.order))
	copy(out, r.order)
	return out
}

// MarshalJSON encodes the registry as an ordered list of breeds
func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.order)
}

// MarshalYAML encodes the registry as an ordered list of breeds
func (r *Registry) MarshalYAML() (interface{}, error) {
	return r.order, nil
}

// UnmarshalJSON rebuilds the registry from a list of breeds
func (r *Registry) UnmarshalJSON(data []byte) error {
	var list []*Breed
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	r.order = nil
	r.byCode = make(map[int]*Breed, len(list))
	for _, b := range list {
		if b == nil {
			continue
		}
		if _, dup := r.byCode[b.Code]; dup {
			return fmt.Errorf("duplicate breed code %d", b.Code)
		}
		r.add(b)
	}
	return nil
}
