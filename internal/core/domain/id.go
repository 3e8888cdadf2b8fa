package domain

import (
	"fmt"
	"strings"
)

// NormalizeToken upper-cases s, trims it and collapses every inner
// whitespace run into a single dash. Identifier segments are built
// exclusively from normalized tokens so derivation stays deterministic.
func NormalizeToken(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), "-")
}

// CollapseWhitespace trims s and replaces inner whitespace runs with single
// dashes, preserving case. Used for the stored route field.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "-")
}

// TrainID derives the canonical train identifier from name and route:
// TRAIN-<NAME>-<ROUTE>, both tokens normalized. The id is recomputed
// whenever name or route changes.
func TrainID(name, route string) string {
	return fmt.Sprintf("TRAIN-%s-%s", NormalizeToken(name), NormalizeToken(route))
}

// BookingID derives the booking identifier:
// <TRAIN>-WAGON<wagonID>-<TYPE>-SEAT<seatID>-<PASSENGER>.
// Calling it twice with identical inputs yields identical output; changing
// only the passenger changes only the trailing segment.
func BookingID(trainName string, wagonID int, wagonType WagonType, seatID int, passenger string) string {
	return fmt.Sprintf("%s-WAGON%d-%s-SEAT%d-%s",
		NormalizeToken(trainName),
		wagonID,
		strings.ToUpper(strings.TrimSpace(string(wagonType))),
		seatID,
		NormalizeToken(passenger),
	)
}
