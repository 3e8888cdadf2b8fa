// Package domain holds the railway reservation entities and the error kinds
// shared by every layer. Call sites wrap these sentinels with fmt.Errorf and
// %w so callers can classify failures with errors.Is without depending on
// message text.
package domain

import "errors"

var (
	// ErrInvalidArgument marks malformed or out-of-range caller input:
	// non-positive ids, empty keywords, empty store paths, unknown wagon
	// types.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a referenced train, wagon, seat or booking that does
	// not exist in the loaded collection.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks a mutation that would violate a domain invariant:
	// booking an occupied seat, deleting a train or wagon with booked seats,
	// dating a booking before today.
	ErrConflict = errors.New("conflict")

	// ErrStorage marks a failure of the backing file itself. Reads never
	// produce it (a missing or corrupt file loads as an empty collection);
	// create, write and delete propagate it.
	ErrStorage = errors.New("storage failure")
)
