package jsonfile

import "github.com/oleksiik/railbook/internal/core/domain"

// Wire shapes for the backing store, kept separate from the domain types so
// optional fields are defaulted exactly once at this boundary. The schema is
// an array of trainRecord; a seat with no booking field rehydrates with an
// empty booking list.

type trainRecord struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Route  string        `json:"route"`
	Wagons []wagonRecord `json:"wagons"`
}

type wagonRecord struct {
	ID    int          `json:"id"`
	Type  string       `json:"type"`
	Seats []seatRecord `json:"seats"`
}

type seatRecord struct {
	ID       int             `json:"id"`
	IsBooked bool            `json:"isBooked"`
	Booking  []bookingRecord `json:"booking"`
}

type bookingRecord struct {
	ID            string `json:"id"`
	PassengerName string `json:"passengerName"`
	Date          string `json:"date"`
}

func recordFromTrain(t *domain.Train) trainRecord {
	wagons := make([]wagonRecord, 0, len(t.Wagons))
	for _, w := range t.Wagons {
		seats := make([]seatRecord, 0, len(w.Seats))
		for _, s := range w.Seats {
			bookings := make([]bookingRecord, 0, len(s.Booking))
			for _, b := range s.Booking {
				bookings = append(bookings, bookingRecord{
					ID:            b.ID,
					PassengerName: b.PassengerName,
					Date:          b.Date,
				})
			}
			seats = append(seats, seatRecord{ID: s.ID, IsBooked: s.IsBooked, Booking: bookings})
		}
		wagons = append(wagons, wagonRecord{ID: w.ID, Type: string(w.Type), Seats: seats})
	}
	return trainRecord{ID: t.ID, Name: t.Name, Route: t.Route, Wagons: wagons}
}

func (r trainRecord) toDomain() domain.Train {
	wagons := make([]domain.Wagon, 0, len(r.Wagons))
	for _, w := range r.Wagons {
		seats := make([]domain.Seat, 0, len(w.Seats))
		for _, s := range w.Seats {
			bookings := make([]domain.Booking, 0, len(s.Booking))
			for _, b := range s.Booking {
				bookings = append(bookings, domain.Booking{
					ID:            b.ID,
					PassengerName: b.PassengerName,
					Date:          b.Date,
				})
			}
			seats = append(seats, domain.Seat{ID: s.ID, IsBooked: s.IsBooked, Booking: bookings})
		}
		wagons = append(wagons, domain.Wagon{ID: w.ID, Type: domain.WagonType(w.Type), Seats: seats})
	}
	return domain.Train{ID: r.ID, Name: r.Name, Route: r.Route, Wagons: wagons}
}
