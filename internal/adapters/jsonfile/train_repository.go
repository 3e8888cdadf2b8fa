package jsonfile

import (
	"context"
	"fmt"
	"strings"

	"github.com/oleksiik/railbook/internal/core/domain"
)

// TrainRepository stores the full train collection in one JSON file. Every
// mutating call performs a complete read-modify-rewrite; see ports for the
// concurrency contract.
type TrainRepository struct {
	path  string
	store *Provider[trainRecord]
}

// NewTrainRepository creates a repository whose keyword searches run against
// path. Other operations take an explicit path so callers can address
// scratch stores directly.
func NewTrainRepository(path string) *TrainRepository {
	return &TrainRepository{path: path, store: NewProvider[trainRecord]()}
}

// Load reads and rehydrates the whole collection at path. A missing or
// corrupt file yields an empty collection, never an error.
func (r *TrainRepository) Load(ctx context.Context, path string) ([]domain.Train, error) {
	records := r.store.Read(ctx, path)
	trains := make([]domain.Train, 0, len(records))
	for _, rec := range records {
		trains = append(trains, rec.toDomain())
	}
	return trains, nil
}

// Save appends train as a new record and rewrites the file. A blank id is
// derived from name and route first. No dedup: repeated saves of the same
// train create duplicate records.
func (r *TrainRepository) Save(ctx context.Context, path string, train *domain.Train) error {
	records := r.store.Read(ctx, path)

	rec := recordFromTrain(train)
	if rec.ID == "" {
		rec.ID = domain.TrainID(train.Name, train.Route)
	}
	records = append(records, rec)

	return r.store.Write(ctx, path, records)
}

// Create writes an empty collection at path.
func (r *TrainRepository) Create(ctx context.Context, path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty store path", domain.ErrInvalidArgument)
	}
	return r.store.Create(ctx, path)
}

// Delete removes the backing file, failing when it does not exist.
func (r *TrainRepository) Delete(ctx context.Context, path string) error {
	return r.store.Delete(ctx, path)
}

// DeleteTrain removes the train with the given id and rewrites the file.
// Trains with any booked seat cannot be deleted.
func (r *TrainRepository) DeleteTrain(ctx context.Context, path, id string) error {
	trains, err := r.Load(ctx, path)
	if err != nil {
		return err
	}

	var found *domain.Train
	for i := range trains {
		if trains[i].ID == id {
			found = &trains[i]
			break
		}
	}
	if found == nil {
		return fmt.Errorf("%w: train %q", domain.ErrNotFound, id)
	}
	if found.HasBookedSeats() {
		return fmt.Errorf("%w: cannot delete train %q: some seats are booked", domain.ErrConflict, id)
	}

	remaining := make([]trainRecord, 0, len(trains)-1)
	for i := range trains {
		if trains[i].ID != id {
			remaining = append(remaining, recordFromTrain(&trains[i]))
		}
	}
	// Can only trigger if the id changed between lookup and filtering; a
	// misuse signal rather than a normal path.
	if len(remaining) == len(trains) {
		return fmt.Errorf("%w: train %q was not removed", domain.ErrConflict, id)
	}

	return r.store.Write(ctx, path, remaining)
}

// UpdateTrain replaces the stored record matching train's current id, then
// recomputes the id from the possibly-edited name and route. The caller's
// train is mutated: its id after the call is the recomputed one.
func (r *TrainRepository) UpdateTrain(ctx context.Context, path string, train *domain.Train) error {
	trains, err := r.Load(ctx, path)
	if err != nil {
		return err
	}

	index := -1
	for i := range trains {
		if trains[i].ID == train.ID {
			index = i
			break
		}
	}
	if index == -1 {
		return fmt.Errorf("%w: train %q", domain.ErrNotFound, train.ID)
	}

	train.ID = domain.TrainID(train.Name, train.Route)
	trains[index] = *train

	records := make([]trainRecord, 0, len(trains))
	for i := range trains {
		records = append(records, recordFromTrain(&trains[i]))
	}
	return r.store.Write(ctx, path, records)
}

// GenerateID derives the canonical train identifier for name and route.
func (r *TrainRepository) GenerateID(name, route string) string {
	return domain.TrainID(name, route)
}

// FindByID returns every train whose id contains keyword,
// case-insensitively, reading from the repository's configured path.
func (r *TrainRepository) FindByID(ctx context.Context, keyword string) ([]domain.Train, error) {
	trains, err := r.Load(ctx, r.path)
	if err != nil {
		return nil, err
	}

	normalized := strings.ToUpper(strings.TrimSpace(keyword))
	matches := make([]domain.Train, 0)
	for _, t := range trains {
		if strings.Contains(strings.ToUpper(t.ID), normalized) {
			matches = append(matches, t)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no trains match %q", domain.ErrNotFound, keyword)
	}
	return matches, nil
}

// BuildTrain constructs a train with wagonsNum wagons of wagonType, each
// holding seatsPerWagon fresh unbooked seats. Pure builder: nothing is
// persisted. Each wagon gets its own seat slice.
func (r *TrainRepository) BuildTrain(name, route string, wagonsNum int, wagonType string, seatsPerWagon int) (*domain.Train, error) {
	wt, err := domain.ParseWagonType(wagonType)
	if err != nil {
		return nil, err
	}
	if wagonsNum <= 0 {
		return nil, fmt.Errorf("%w: number of wagons must be positive, got %d", domain.ErrInvalidArgument, wagonsNum)
	}
	if seatsPerWagon <= 0 {
		return nil, fmt.Errorf("%w: number of seats must be positive, got %d", domain.ErrInvalidArgument, seatsPerWagon)
	}

	wagons := make([]domain.Wagon, 0, wagonsNum)
	for i := 0; i < wagonsNum; i++ {
		wagons = append(wagons, domain.Wagon{
			ID:    i + 1,
			Type:  wt,
			Seats: domain.NewSeats(seatsPerWagon),
		})
	}

	normalizedRoute := domain.CollapseWhitespace(route)
	return &domain.Train{
		ID:     domain.TrainID(name, route),
		Name:   name,
		Route:  normalizedRoute,
		Wagons: wagons,
	}, nil
}
