// Package ports defines the interfaces between the core services and the
// persistence adapters. Usecases depend on these, never on a concrete
// adapter, so tests can substitute in-memory fakes.
package ports

import (
	"context"

	"github.com/oleksiik/railbook/internal/core/domain"
)

// TrainRepository is the persistence boundary for the train collection.
// Every mutation is a full load-modify-rewrite of the backing file; there is
// no transaction and no lock, so overlapping calls race and the last writer
// wins. Single-process, single-writer access is assumed throughout.
type TrainRepository interface {
	// Load reads the whole collection at path. A missing or corrupt file
	// loads as an empty collection; no error surfaces for reads.
	Load(ctx context.Context, path string) ([]domain.Train, error)

	// Save appends train as a new record and rewrites the file. It does not
	// deduplicate: saving the same train twice stores it twice. Use
	// UpdateTrain to modify an existing record.
	Save(ctx context.Context, path string, train *domain.Train) error

	// Create writes an empty collection at path.
	Create(ctx context.Context, path string) error

	// Delete removes the backing file, failing if it does not exist.
	Delete(ctx context.Context, path string) error

	// DeleteTrain removes the train with the given id, refusing while any of
	// its seats is booked.
	DeleteTrain(ctx context.Context, path, id string) error

	// UpdateTrain replaces the record matching train's current id, then
	// recomputes the id from the (possibly edited) name and route. The
	// caller's train is mutated: capture the old id before calling if it is
	// still needed.
	UpdateTrain(ctx context.Context, path string, train *domain.Train) error

	// FindByID returns every train whose id contains keyword,
	// case-insensitively, reading from the repository's configured path.
	FindByID(ctx context.Context, keyword string) ([]domain.Train, error)
}
