package usecases

import (
	"fmt"
	"strings"

	"github.com/oleksiik/railbook/internal/core/domain"
)

// WagonService implements the pure in-memory wagon operations. Mutations are
// in place: callers receive the same train they passed in, not a copy, and
// must persist it themselves.
type WagonService struct{}

// NewWagonService creates a wagon service.
func NewWagonService() *WagonService {
	return &WagonService{}
}

// AddWagon appends a new wagon of wagonType with seatsNum fresh unbooked
// seats. The wagon id is the current wagon count plus one.
func (s *WagonService) AddWagon(train *domain.Train, wagonType string, seatsNum int) (*domain.Train, error) {
	wt, err := domain.ParseWagonType(wagonType)
	if err != nil {
		return nil, err
	}
	if seatsNum <= 0 {
		return nil, fmt.Errorf("%w: number of seats must be positive, got %d", domain.ErrInvalidArgument, seatsNum)
	}

	train.Wagons = append(train.Wagons, domain.Wagon{
		ID:    len(train.Wagons) + 1,
		Type:  wt,
		Seats: domain.NewSeats(seatsNum),
	})
	return train, nil
}

// DeleteWagon removes the wagon with the given id. Wagons with any booked
// seat cannot be deleted.
func (s *WagonService) DeleteWagon(train *domain.Train, wagonID int) (*domain.Train, error) {
	var wagon *domain.Wagon
	for i := range train.Wagons {
		if train.Wagons[i].ID == wagonID {
			wagon = &train.Wagons[i]
			break
		}
	}
	if wagon == nil {
		return nil, fmt.Errorf("%w: wagon %d", domain.ErrNotFound, wagonID)
	}
	if wagon.HasBookedSeats() {
		return nil, fmt.Errorf("%w: cannot delete wagon %d: some seats are booked", domain.ErrConflict, wagonID)
	}

	kept := train.Wagons[:0]
	for _, w := range train.Wagons {
		if w.ID != wagonID {
			kept = append(kept, w)
		}
	}
	train.Wagons = kept
	return train, nil
}

// WagonInfo renders a textual occupancy summary for the wagon: type,
// booked percentage (two decimals; a seatless wagon yields NaN), counts and
// a seat grid wrapped every six seats.
func (s *WagonService) WagonInfo(train *domain.Train, wagonID int) (string, error) {
	var wagon *domain.Wagon
	for i := range train.Wagons {
		if train.Wagons[i].ID == wagonID {
			wagon = &train.Wagons[i]
			break
		}
	}
	if wagon == nil {
		return "", fmt.Errorf("%w: wagon %d", domain.ErrNotFound, wagonID)
	}

	booked := wagon.BookedSeats()
	total := len(wagon.Seats)
	available := total - booked
	percent := float64(booked) / float64(total) * 100

	cells := make([]string, 0, total)
	for i, seat := range wagon.Seats {
		marker := "□"
		if seat.IsBooked {
			marker = "■"
		}
		cell := fmt.Sprintf("%d. %s", i+1, marker)
		if (i+1)%6 == 0 {
			cell += "\n         "
		}
		cells = append(cells, cell)
	}
	grid := strings.Join(cells, "  ")

	return fmt.Sprintf(
		"\nWagon ID: %d / Type: %s / Fullness: %.2f%% \n    Total Seats: %d / ■ Booked: %d / □ Available: %d\n    Seats: %s",
		wagon.ID, wagon.Type, percent, total, booked, available, grid,
	), nil
}

// FindByID returns a pointer to the wagon with the given id inside train.
// Negative ids fail with ErrInvalidArgument; side-effect-free lookup.
func (s *WagonService) FindByID(train *domain.Train, wagonID int) (*domain.Wagon, error) {
	if wagonID < 0 {
		return nil, fmt.Errorf("%w: wagon id must not be negative, got %d", domain.ErrInvalidArgument, wagonID)
	}
	for i := range train.Wagons {
		if train.Wagons[i].ID == wagonID {
			return &train.Wagons[i], nil
		}
	}
	return nil, fmt.Errorf("%w: wagon %d", domain.ErrNotFound, wagonID)
}
