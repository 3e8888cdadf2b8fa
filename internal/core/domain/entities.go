package domain

import (
	"fmt"
	"strings"
)

// WagonType classifies the compartment layout of a wagon.
type WagonType string

const (
	WagonCoupe   WagonType = "coupe"
	WagonBerth   WagonType = "berth"
	WagonSleeper WagonType = "sleeper"
)

// ParseWagonType normalizes raw user input into one of the closed wagon
// types. Unknown values fail with ErrInvalidArgument.
func ParseWagonType(raw string) (WagonType, error) {
	t := WagonType(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case WagonCoupe, WagonBerth, WagonSleeper:
		return t, nil
	}
	return "", fmt.Errorf("%w: invalid wagon type %q", ErrInvalidArgument, raw)
}

// Booking is a passenger reservation attached to a seat. Its ID is derived
// deterministically from the train, wagon, seat and passenger (see BookingID).
type Booking struct {
	ID            string
	PassengerName string
	Date          string // DD.MM.YYYY
}

// Seat is a bookable unit within a wagon. Booking holds at most one active
// entry; the slice form mirrors the wire shape, where an absent list and an
// empty list both mean "not booked".
type Seat struct {
	ID       int
	IsBooked bool
	Booking  []Booking
}

// Wagon is a compartment-type subdivision of a train, owning its seats.
type Wagon struct {
	ID    int
	Type  WagonType
	Seats []Seat
}

// HasBookedSeats reports whether any seat in the wagon carries a booking.
func (w *Wagon) HasBookedSeats() bool {
	for i := range w.Seats {
		if w.Seats[i].IsBooked {
			return true
		}
	}
	return false
}

// BookedSeats returns the number of booked seats in the wagon.
func (w *Wagon) BookedSeats() int {
	n := 0
	for i := range w.Seats {
		if w.Seats[i].IsBooked {
			n++
		}
	}
	return n
}

// Train is the top-level reservable unit. Its ID is a pure function of name
// and route (see TrainID) and is recomputed on every update, so it is not a
// stable key across edits.
type Train struct {
	ID     string
	Name   string
	Route  string
	Wagons []Wagon
}

// HasBookedSeats reports whether any seat in any wagon carries a booking.
// Trains with booked seats are protected from deletion.
func (t *Train) HasBookedSeats() bool {
	for i := range t.Wagons {
		if t.Wagons[i].HasBookedSeats() {
			return true
		}
	}
	return false
}

// NewSeats allocates n fresh unbooked seats with 1-based ids. Every call
// returns a new slice; wagons must never share seat storage.
func NewSeats(n int) []Seat {
	seats := make([]Seat, 0, n)
	for i := 0; i < n; i++ {
		seats = append(seats, Seat{ID: i + 1, IsBooked: false, Booking: []Booking{}})
	}
	return seats
}
