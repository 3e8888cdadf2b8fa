package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oleksiik/railbook/internal/core/domain"
	"github.com/oleksiik/railbook/internal/core/ports"
	"github.com/oleksiik/railbook/internal/pkg/metrics"
)

// DateLayout is the booking date format, DD.MM.YYYY.
const DateLayout = "02.01.2006"

// BookingService implements the booking operations. Operations that touch
// storage load the entire collection fresh from the repository, mutate in
// memory and persist the affected train back through UpdateTrain.
type BookingService struct {
	trains ports.TrainRepository
	path   string
}

// NewBookingService creates a booking service over the given repository and
// store path.
func NewBookingService(trains ports.TrainRepository, path string) *BookingService {
	return &BookingService{trains: trains, path: path}
}

// SeatFindByID locates a bookable seat inside wagon. It fails with
// ErrInvalidArgument for a non-positive id, ErrNotFound when the seat does
// not exist and ErrConflict when the seat is already booked. No side
// effects.
func (s *BookingService) SeatFindByID(wagon *domain.Wagon, seatID int) (*domain.Seat, error) {
	if seatID <= 0 {
		return nil, fmt.Errorf("%w: seat id must be positive, got %d", domain.ErrInvalidArgument, seatID)
	}
	for i := range wagon.Seats {
		if wagon.Seats[i].ID == seatID {
			if wagon.Seats[i].IsBooked {
				return nil, fmt.Errorf("%w: seat %d is already booked", domain.ErrConflict, seatID)
			}
			return &wagon.Seats[i], nil
		}
	}
	return nil, fmt.Errorf("%w: seat %d", domain.ErrNotFound, seatID)
}

// GenerateBookingID derives the deterministic booking identifier for the
// given seat and passenger.
func (s *BookingService) GenerateBookingID(train *domain.Train, wagon *domain.Wagon, seat *domain.Seat, passenger string) string {
	return domain.BookingID(train.Name, wagon.ID, wagon.Type, seat.ID, passenger)
}

// AddBooking books seat for passenger dated today, writes the seat back into
// wagon and the wagon back into train, and persists the train. The train's
// id is recomputed by the update; capture it beforehand if still needed.
func (s *BookingService) AddBooking(ctx context.Context, train *domain.Train, wagon *domain.Wagon, seat *domain.Seat, passenger string) error {
	date, err := s.GenerateDateString(0)
	if err != nil {
		return err
	}

	seat.IsBooked = true
	booking := domain.Booking{
		ID:            s.GenerateBookingID(train, wagon, seat, passenger),
		PassengerName: passenger,
		Date:          date,
	}
	if seat.Booking == nil {
		seat.Booking = []domain.Booking{}
	}
	seat.Booking = append(seat.Booking, booking)

	for i := range wagon.Seats {
		if wagon.Seats[i].ID == seat.ID {
			wagon.Seats[i] = *seat
			break
		}
	}
	for i := range train.Wagons {
		if train.Wagons[i].ID == wagon.ID {
			train.Wagons[i] = *wagon
			break
		}
	}

	if err := s.trains.UpdateTrain(ctx, s.path, train); err != nil {
		return err
	}
	metrics.BookingsCreated.Inc()
	return nil
}

// RemoveBooking scans every seat in the collection for the booking id,
// removes the first match, resets the seat and persists its train. Booking
// ids are globally unique, so the scan short-circuits on the first hit.
// Fails with ErrNotFound when no booking matches.
func (s *BookingService) RemoveBooking(ctx context.Context, bookingID string) error {
	trains, err := s.trains.Load(ctx, s.path)
	if err != nil {
		return err
	}

	for ti := range trains {
		for wi := range trains[ti].Wagons {
			for si := range trains[ti].Wagons[wi].Seats {
				seat := &trains[ti].Wagons[wi].Seats[si]
				for bi := range seat.Booking {
					if seat.Booking[bi].ID != bookingID {
						continue
					}
					seat.Booking = append(seat.Booking[:bi], seat.Booking[bi+1:]...)
					seat.IsBooked = false
					if err := s.trains.UpdateTrain(ctx, s.path, &trains[ti]); err != nil {
						return err
					}
					metrics.BookingsRemoved.Inc()
					return nil
				}
			}
		}
	}
	return fmt.Errorf("%w: booking %q", domain.ErrNotFound, bookingID)
}

// UpdateBooking replaces the stored booking matching booking's id and
// persists its train. A missing match is a silent no-op: nil is returned
// and nothing is written. The asymmetry with RemoveBooking is deliberate
// and load-bearing for callers.
func (s *BookingService) UpdateBooking(ctx context.Context, booking domain.Booking) error {
	trains, err := s.trains.Load(ctx, s.path)
	if err != nil {
		return err
	}

	for ti := range trains {
		for wi := range trains[ti].Wagons {
			for si := range trains[ti].Wagons[wi].Seats {
				seat := &trains[ti].Wagons[wi].Seats[si]
				for bi := range seat.Booking {
					if seat.Booking[bi].ID != booking.ID {
						continue
					}
					seat.Booking[bi] = booking
					return s.trains.UpdateTrain(ctx, s.path, &trains[ti])
				}
			}
		}
	}
	return nil
}

// FindBookings returns every booking whose id, passenger name or date
// contains keyword, case-insensitively, in traversal order. Fails with
// ErrInvalidArgument on a blank keyword and ErrNotFound on no matches.
func (s *BookingService) FindBookings(ctx context.Context, keyword string) ([]domain.Booking, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, fmt.Errorf("%w: search keyword must not be empty", domain.ErrInvalidArgument)
	}

	trains, err := s.trains.Load(ctx, s.path)
	if err != nil {
		return nil, err
	}

	normalized := strings.ToUpper(strings.TrimSpace(keyword))
	var matches []domain.Booking
	for _, t := range trains {
		for _, w := range t.Wagons {
			for _, seat := range w.Seats {
				for _, b := range seat.Booking {
					haystack := strings.ToUpper(b.ID + b.PassengerName + b.Date)
					if strings.Contains(haystack, normalized) {
						matches = append(matches, b)
					}
				}
			}
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: no bookings match %q", domain.ErrNotFound, keyword)
	}
	return matches, nil
}

// LoadBookings flattens every booking in the collection, in traversal order.
// Fails with ErrNotFound when there are none.
func (s *BookingService) LoadBookings(ctx context.Context) ([]domain.Booking, error) {
	trains, err := s.trains.Load(ctx, s.path)
	if err != nil {
		return nil, err
	}

	var bookings []domain.Booking
	for _, t := range trains {
		for _, w := range t.Wagons {
			for _, seat := range w.Seats {
				bookings = append(bookings, seat.Booking...)
			}
		}
	}
	if len(bookings) == 0 {
		return nil, fmt.Errorf("%w: no bookings", domain.ErrNotFound)
	}
	return bookings, nil
}

// GenerateDateString formats today plus dayShift days as DD.MM.YYYY. The
// comparison is truncated to day resolution; a resulting date strictly
// before today fails with ErrConflict.
func (s *BookingService) GenerateDateString(dayShift int) (string, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	target := today.AddDate(0, 0, dayShift)
	if target.Before(today) {
		return "", fmt.Errorf("%w: date cannot be before today", domain.ErrConflict)
	}
	return target.Format(DateLayout), nil
}

// UpdateBookingID recomposes booking's id with the final dash token replaced
// by the normalized new passenger name, and returns it. The booking itself
// is not mutated and nothing is persisted; callers assign the result and
// call UpdateBooking themselves.
func (s *BookingService) UpdateBookingID(booking domain.Booking, newPassengerName string) (string, error) {
	if strings.TrimSpace(newPassengerName) == "" {
		return "", fmt.Errorf("%w: passenger name must not be empty", domain.ErrInvalidArgument)
	}
	parts := strings.Split(booking.ID, "-")
	parts[len(parts)-1] = domain.NormalizeToken(newPassengerName)
	return strings.Join(parts, "-"), nil
}
