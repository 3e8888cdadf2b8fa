package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/oleksiik/railbook/internal/core/domain"
)

func newTestRepo(t *testing.T) (*TrainRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trains.json")
	return NewTrainRepository(path), path
}

func expressTrain(repo *TrainRepository) *domain.Train {
	return &domain.Train{
		ID:    repo.GenerateID("Express", "A-B"),
		Name:  "Express",
		Route: "A-B",
		Wagons: []domain.Wagon{
			{ID: 1, Type: domain.WagonCoupe, Seats: domain.NewSeats(1)},
		},
	}
}

func TestCreateThenLoadReturnsEmpty(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	trains, err := repo.Load(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trains) != 0 {
		t.Fatalf("expected empty collection, got %d trains", len(trains))
	}
}

func TestCreateEmptyPathFails(t *testing.T) {
	repo, _ := newTestRepo(t)
	err := repo.Create(context.Background(), "")
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(ctx, path, expressTrain(repo)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	trains, err := repo.Load(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trains) != 1 {
		t.Fatalf("expected 1 train, got %d", len(trains))
	}

	got := trains[0]
	if got.ID != "TRAIN-EXPRESS-A-B" {
		t.Errorf("expected id TRAIN-EXPRESS-A-B, got %s", got.ID)
	}
	if got.Name != "Express" || got.Route != "A-B" {
		t.Errorf("name/route mismatch: %s %s", got.Name, got.Route)
	}
	if len(got.Wagons) != 1 || got.Wagons[0].ID != 1 || got.Wagons[0].Type != domain.WagonCoupe {
		t.Fatalf("wagon mismatch: %+v", got.Wagons)
	}
	seat := got.Wagons[0].Seats[0]
	if seat.ID != 1 || seat.IsBooked {
		t.Errorf("seat mismatch: %+v", seat)
	}
	if seat.Booking == nil || len(seat.Booking) != 0 {
		t.Errorf("expected rehydrated empty booking list, got %v", seat.Booking)
	}
}

func TestSaveDerivesBlankID(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	train := expressTrain(repo)
	train.ID = ""
	if err := repo.Save(ctx, path, train); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	trains, _ := repo.Load(ctx, path)
	if trains[0].ID != "TRAIN-EXPRESS-A-B" {
		t.Errorf("expected derived id, got %q", trains[0].ID)
	}
}

func TestSaveAppendsWithoutDedup(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	train := expressTrain(repo)
	if err := repo.Save(ctx, path, train); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(ctx, path, train); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	trains, _ := repo.Load(ctx, path)
	if len(trains) != 2 {
		t.Fatalf("expected duplicate records, got %d", len(trains))
	}
}

func TestSaveWritesWireSchema(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	train := expressTrain(repo)
	train.Wagons[0].Seats[0].Booking = nil // absent list must serialize as []
	if err := repo.Save(ctx, path, train); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	content := string(data)
	for _, key := range []string{`"id"`, `"name"`, `"route"`, `"wagons"`, `"type"`, `"seats"`, `"isBooked"`, `"booking": []`} {
		if !strings.Contains(content, key) {
			t.Errorf("expected %s in wire output", key)
		}
	}
}

func TestDeleteTrain(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	train := expressTrain(repo)
	if err := repo.Save(ctx, path, train); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.DeleteTrain(ctx, path, "TRAIN-NO-SUCH"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := repo.DeleteTrain(ctx, path, train.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	trains, _ := repo.Load(ctx, path)
	if len(trains) != 0 {
		t.Fatalf("expected train removed, got %d", len(trains))
	}
}

func TestDeleteTrainRefusesBookedSeats(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	train := expressTrain(repo)
	train.Wagons[0].Seats[0].IsBooked = true
	train.Wagons[0].Seats[0].Booking = []domain.Booking{
		{ID: "b1", PassengerName: "Bob", Date: "01.01.2025"},
	}
	if err := repo.Save(ctx, path, train); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := repo.DeleteTrain(ctx, path, train.ID); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	// Clearing the booking unblocks deletion.
	train.Wagons[0].Seats[0].IsBooked = false
	train.Wagons[0].Seats[0].Booking = []domain.Booking{}
	if err := repo.UpdateTrain(ctx, path, train); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.DeleteTrain(ctx, path, train.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	trains, _ := repo.Load(ctx, path)
	if len(trains) != 0 {
		t.Error("expected train removed after unbooking")
	}
}

func TestUpdateTrainRecomputesID(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	train := expressTrain(repo)
	if err := repo.Save(ctx, path, train); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	train.Name = "Night Express"
	if err := repo.UpdateTrain(ctx, path, train); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if train.ID != "TRAIN-NIGHT-EXPRESS-A-B" {
		t.Errorf("expected recomputed id on caller's train, got %s", train.ID)
	}

	trains, _ := repo.Load(ctx, path)
	if len(trains) != 1 || trains[0].ID != "TRAIN-NIGHT-EXPRESS-A-B" {
		t.Errorf("expected one stored train with recomputed id, got %+v", trains)
	}
	if trains[0].Name != "Night Express" {
		t.Errorf("expected updated name, got %s", trains[0].Name)
	}
}

func TestUpdateTrainNotFound(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Create(ctx, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := repo.UpdateTrain(ctx, path, expressTrain(repo))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindByID(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, path, expressTrain(repo)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other, err := repo.BuildTrain("Local", "C-D", 1, "berth", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Save(ctx, path, other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	matches, err := repo.FindByID(ctx, "express")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "Express" {
		t.Fatalf("expected the Express train, got %+v", matches)
	}

	// Read-only: identical calls return identical result sets.
	again, err := repo.FindByID(ctx, "express")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(again) != 1 || again[0].ID != matches[0].ID {
		t.Error("expected identical results on repeated search")
	}

	if _, err := repo.FindByID(ctx, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBuildTrain(t *testing.T) {
	repo, _ := newTestRepo(t)

	train, err := repo.BuildTrain("City Link", "Kyiv  Lviv", 2, "coupe", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if train.ID != "TRAIN-CITY-LINK-KYIV-LVIV" {
		t.Errorf("unexpected id %s", train.ID)
	}
	if train.Route != "Kyiv-Lviv" {
		t.Errorf("expected normalized route, got %q", train.Route)
	}
	if len(train.Wagons) != 2 {
		t.Fatalf("expected 2 wagons, got %d", len(train.Wagons))
	}
	for i, w := range train.Wagons {
		if w.ID != i+1 || w.Type != domain.WagonCoupe || len(w.Seats) != 3 {
			t.Errorf("wagon %d mismatch: %+v", i, w)
		}
	}

	// Seat slices must not be shared between wagons.
	train.Wagons[0].Seats[0].IsBooked = true
	if train.Wagons[1].Seats[0].IsBooked {
		t.Error("wagons share seat storage")
	}
}

func TestBuildTrainValidation(t *testing.T) {
	repo, _ := newTestRepo(t)

	if _, err := repo.BuildTrain("T", "R", 1, "cargo", 2); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for wagon type, got %v", err)
	}
	if _, err := repo.BuildTrain("T", "R", 0, "coupe", 2); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for wagon count, got %v", err)
	}
	if _, err := repo.BuildTrain("T", "R", 1, "coupe", 0); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for seat count, got %v", err)
	}
}

func TestDeleteStore(t *testing.T) {
	repo, path := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Delete(ctx, path); !errors.Is(err, domain.ErrStorage) {
		t.Errorf("expected ErrStorage for missing file, got %v", err)
	}

	if err := repo.Create(ctx, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(ctx, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
