package database

import (
	"context"
	"sync"

	"github.com/univault/univault-api/model"
)

// collection is an insertion-ordered map guarded by a single RWMutex.
// Updating an existing id keeps its original position.
type collection[T any] struct {
	mu      sync.RWMutex
	records map[string]T
	order   []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{
		records: make(map[string]T),
	}
}

func (c *collection[T]) put(id string, rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.records[id]; !exists {
		c.order = append(c.order, id)
	}
	c.records[id] = rec
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	rec, ok := c.records[id]
	return rec, ok
}

func (c *collection[T]) list() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.records[id])
	}
	return out
}

func (c *collection[T]) delete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.records[id]; !exists {
		return
	}
	delete(c.records, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// MemoryResearchStore is the volatile default store. All data is lost on
// process restart.
type MemoryResearchStore struct {
	records *collection[model.Research]
}

// NewMemoryResearchStore creates an empty in-memory research store.
func NewMemoryResearchStore() *MemoryResearchStore {
	return &MemoryResearchStore{records: newCollection[model.Research]()}
}

func (s *MemoryResearchStore) Put(_ context.Context, rec model.Research) error {
	s.records.put(rec.ID, rec)
	return nil
}

func (s *MemoryResearchStore) Get(_ context.Context, id string) (model.Research, error) {
	rec, ok := s.records.get(id)
	if !ok {
		return model.Research{}, ErrNotFound
	}
	return rec, nil
}

func (s *MemoryResearchStore) List(_ context.Context) ([]model.Research, error) {
	return s.records.list(), nil
}

func (s *MemoryResearchStore) Delete(_ context.Context, id string) error {
	s.records.delete(id)
	return nil
}

// MemoryInstitutionStore is the volatile institution store.
type MemoryInstitutionStore struct {
	records *collection[model.Institution]
}

// NewMemoryInstitutionStore creates an empty in-memory institution store.
func NewMemoryInstitutionStore() *MemoryInstitutionStore {
	return &MemoryInstitutionStore{records: newCollection[model.Institution]()}
}

func (s *MemoryInstitutionStore) Put(_ context.Context, inst model.Institution) error {
	s.records.put(inst.ID, inst)
	return nil
}

func (s *MemoryInstitutionStore) Get(_ context.Context, id string) (model.Institution, error) {
	inst, ok := s.records.get(id)
	if !ok {
		return model.Institution{}, ErrNotFound
	}
	return inst, nil
}

func (s *MemoryInstitutionStore) List(_ context.Context) ([]model.Institution, error) {
	return s.records.list(), nil
}

func (s *MemoryInstitutionStore) Delete(_ context.Context, id string) error {
	s.records.delete(id)
	return nil
}
