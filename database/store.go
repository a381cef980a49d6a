package database

import (
	"context"
	"errors"

	"github.com/univault/univault-api/model"
)

// ErrNotFound is returned by Get when no record has the given id.
var ErrNotFound = errors.New("record not found")

// ResearchStore holds research records keyed by id. Put inserts or
// overwrites, Delete is idempotent, and List returns records in insertion
// order. Implementations must serialize mutations so a concurrent read
// never observes a partially-applied write.
type ResearchStore interface {
	Put(ctx context.Context, rec model.Research) error
	Get(ctx context.Context, id string) (model.Research, error)
	List(ctx context.Context) ([]model.Research, error)
	Delete(ctx context.Context, id string) error
}

// InstitutionStore holds institution records with the same contract as
// ResearchStore. The API surface is read-only; Put and Delete exist for
// seeding and the aggregates refresher.
type InstitutionStore interface {
	Put(ctx context.Context, inst model.Institution) error
	Get(ctx context.Context, id string) (model.Institution, error)
	List(ctx context.Context) ([]model.Institution, error)
	Delete(ctx context.Context, id string) error
}
