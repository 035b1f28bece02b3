package memory

import (
	"context"
	"sort"
	"sync"

	dom "petstore/internal/domain/pet"
)

type petRepo struct {
	mu   sync.RWMutex
	byID map[int64]dom.Pet
}

func NewPetRepo() dom.Repository {
	return &petRepo{
		byID: make(map[int64]dom.Pet),
	}
}

func (r *petRepo) Create(ctx context.Context, p *dom.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; exists {
		return dom.ErrAlreadyExists
	}
	r.byID[p.ID] = clonePet(*p)
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id int64) (*dom.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, dom.ErrNotFound
	}
	out := clonePet(p)
	return &out, nil
}

func (r *petRepo) List(ctx context.Context, filter dom.ListFilter) ([]dom.Pet, error) {
	r.mu.RLock()
	out := make([]dom.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		if filter.After != nil && p.ID <= *filter.After {
			continue
		}
		out = append(out, clonePet(p))
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

// clonePet keeps callers from mutating stored tags through the pointer.
func clonePet(p dom.Pet) dom.Pet {
	if p.Tag != nil {
		tag := *p.Tag
		p.Tag = &tag
	}
	return p
}
