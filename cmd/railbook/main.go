package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/oleksiik/railbook/internal/adapters/jsonfile"
	"github.com/oleksiik/railbook/internal/core/domain"
	"github.com/oleksiik/railbook/internal/core/usecases"
	"github.com/oleksiik/railbook/internal/pkg/config"
	"github.com/oleksiik/railbook/internal/pkg/logging"
)

const usage = `usage: railbook <command> [args]

store:
  init                                         create an empty store
  delete-store                                 remove the store file

trains:
  add-train <name> <route> <wagons> <type> <seats-per-wagon>
  trains <keyword>                             search trains by id keyword
  delete-train <train-id>

wagons:
  add-wagon <train-id> <type> <seats>
  delete-wagon <train-id> <wagon-id>
  wagon-info <train-id> <wagon-id>

bookings:
  book <train-id> <wagon-id> <seat-id> <passenger>
  cancel <booking-id>
  update-passenger <booking-id> <new-name>
  bookings                                     list all bookings
  find-bookings <keyword>

The store path comes from config.yaml or RAILBOOK_STORE_PATH
(default ./trains.json).`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load("railbook")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx := context.Background()
	path := cfg.Store.Path

	repo := jsonfile.NewTrainRepository(path)
	bookings := usecases.NewBookingService(repo, path)
	wagons := usecases.NewWagonService()

	args := os.Args[2:]
	switch os.Args[1] {
	case "init":
		fatalOn(repo.Create(ctx, path))
		fmt.Printf("created empty store at %s\n", path)

	case "delete-store":
		fatalOn(repo.Delete(ctx, path))
		fmt.Printf("removed store at %s\n", path)

	case "add-train":
		need(args, 5, "add-train <name> <route> <wagons> <type> <seats-per-wagon>")
		train, err := repo.BuildTrain(args[0], args[1], atoi("wagons", args[2]), args[3], atoi("seats-per-wagon", args[4]))
		fatalOn(err)
		fatalOn(repo.Save(ctx, path, train))
		fmt.Printf("saved train %s (%d wagons)\n", train.ID, len(train.Wagons))

	case "trains":
		need(args, 1, "trains <keyword>")
		matches, err := repo.FindByID(ctx, args[0])
		fatalOn(err)
		for i, t := range matches {
			fmt.Printf("%d) Name: %s, Route: %s (%s)\n", i+1, t.Name, t.Route, t.ID)
		}

	case "delete-train":
		need(args, 1, "delete-train <train-id>")
		fatalOn(repo.DeleteTrain(ctx, path, args[0]))
		fmt.Printf("deleted train %s\n", args[0])

	case "add-wagon":
		need(args, 3, "add-wagon <train-id> <type> <seats>")
		train := mustFindTrain(ctx, repo, path, args[0])
		_, err := wagons.AddWagon(train, args[1], atoi("seats", args[2]))
		fatalOn(err)
		fatalOn(repo.UpdateTrain(ctx, path, train))
		fmt.Printf("added wagon %d to %s\n", len(train.Wagons), train.ID)

	case "delete-wagon":
		need(args, 2, "delete-wagon <train-id> <wagon-id>")
		train := mustFindTrain(ctx, repo, path, args[0])
		_, err := wagons.DeleteWagon(train, atoi("wagon-id", args[1]))
		fatalOn(err)
		fatalOn(repo.UpdateTrain(ctx, path, train))
		fmt.Printf("deleted wagon %s from %s\n", args[1], train.ID)

	case "wagon-info":
		need(args, 2, "wagon-info <train-id> <wagon-id>")
		train := mustFindTrain(ctx, repo, path, args[0])
		info, err := wagons.WagonInfo(train, atoi("wagon-id", args[1]))
		fatalOn(err)
		fmt.Println(info)

	case "book":
		need(args, 4, "book <train-id> <wagon-id> <seat-id> <passenger>")
		train := mustFindTrain(ctx, repo, path, args[0])
		wagon, err := wagons.FindByID(train, atoi("wagon-id", args[1]))
		fatalOn(err)
		seat, err := bookings.SeatFindByID(wagon, atoi("seat-id", args[2]))
		fatalOn(err)
		fatalOn(bookings.AddBooking(ctx, train, wagon, seat, args[3]))
		fmt.Printf("booked seat %d for %s (%s)\n", seat.ID, args[3], seat.Booking[len(seat.Booking)-1].ID)

	case "cancel":
		need(args, 1, "cancel <booking-id>")
		fatalOn(bookings.RemoveBooking(ctx, args[0]))
		fmt.Printf("cancelled booking %s\n", args[0])

	case "update-passenger":
		need(args, 2, "update-passenger <booking-id> <new-name>")
		updatePassenger(ctx, bookings, args[0], args[1])

	case "bookings":
		all, err := bookings.LoadBookings(ctx)
		fatalOn(err)
		printBookings(all)

	case "find-bookings":
		need(args, 1, "find-bookings <keyword>")
		matches, err := bookings.FindBookings(ctx, args[0])
		fatalOn(err)
		printBookings(matches)

	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}

// updatePassenger renames the passenger on a stored booking. The stored id
// keeps its original passenger token — the update locates the booking by
// that id — so the freshly derived id is echoed for reference only.
func updatePassenger(ctx context.Context, bookings *usecases.BookingService, bookingID, newName string) {
	all, err := bookings.LoadBookings(ctx)
	fatalOn(err)

	var match *domain.Booking
	for i := range all {
		if all[i].ID == bookingID {
			match = &all[i]
			break
		}
	}
	if match == nil {
		log.Fatalf("booking %q not found", bookingID)
	}

	derivedID, err := bookings.UpdateBookingID(*match, newName)
	fatalOn(err)

	updated := *match
	updated.PassengerName = newName
	fatalOn(bookings.UpdateBooking(ctx, updated))

	fmt.Printf("updated passenger on %s to %s (derived id: %s)\n", bookingID, newName, derivedID)
}

func printBookings(list []domain.Booking) {
	for i, b := range list {
		fmt.Printf("%d) Booking for %s on %s (%s)\n", i+1, b.PassengerName, b.Date, b.ID)
	}
}

// mustFindTrain resolves an exact train id against the store.
func mustFindTrain(ctx context.Context, repo *jsonfile.TrainRepository, path, id string) *domain.Train {
	trains, err := repo.Load(ctx, path)
	fatalOn(err)
	for i := range trains {
		if trains[i].ID == id {
			return &trains[i]
		}
	}
	log.Fatalf("train %q not found", id)
	return nil
}

func need(args []string, n int, usage string) {
	if len(args) != n {
		log.Fatalf("usage: railbook %s", usage)
	}
}

func atoi(name, value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Fatalf("%s must be a number, got %q", name, value)
	}
	return n
}

func fatalOn(err error) {
	if err != nil {
		log.Fatalf("%v", err)
	}
}
