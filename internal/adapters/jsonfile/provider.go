// Package jsonfile persists the train collection as a single JSON array in a
// flat file. Writes replace the whole file atomically (temp file + rename);
// reads soft-fail to an empty collection so a missing store behaves like an
// empty one.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/oleksiik/railbook/internal/core/domain"
	"github.com/oleksiik/railbook/internal/pkg/metrics"
)

// Provider is a generic record store over one JSON array file. It knows
// nothing about the domain; T is the wire-shape record type.
type Provider[T any] struct{}

// NewProvider creates a provider for records of type T.
func NewProvider[T any]() *Provider[T] {
	return &Provider[T]{}
}

// Read returns every record in the file at path. Any failure — missing
// file, unreadable content, malformed JSON — yields an empty collection
// instead of an error. The failure is logged at debug level only.
func (p *Provider[T]) Read(ctx context.Context, path string) []T {
	metrics.StoreReads.Inc()

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Debug("store read failed, loading empty collection", "path", path, "error", err)
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		metrics.StoreErrors.WithLabelValues("read").Inc()
		slog.Debug("store file is not a valid collection, loading empty", "path", path, "error", err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Write atomically replaces the file at path with the given records. The
// content is written to path+".tmp" first and renamed over the original, so
// an interrupted write never corrupts the existing file.
func (p *Provider[T]) Write(ctx context.Context, path string, items []T) error {
	tmp := path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		metrics.StoreErrors.WithLabelValues("write").Inc()
		return fmt.Errorf("%w: create %s: %v", domain.ErrStorage, tmp, err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		f.Close()
		os.Remove(tmp)
		metrics.StoreErrors.WithLabelValues("write").Inc()
		return fmt.Errorf("%w: encode %s: %v", domain.ErrStorage, path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		metrics.StoreErrors.WithLabelValues("write").Inc()
		return fmt.Errorf("%w: close %s: %v", domain.ErrStorage, tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		metrics.StoreErrors.WithLabelValues("write").Inc()
		return fmt.Errorf("%w: replace %s: %v", domain.ErrStorage, path, err)
	}

	metrics.StoreWrites.Inc()
	return nil
}

// Create writes an empty collection at path, replacing any existing file.
func (p *Provider[T]) Create(ctx context.Context, path string) error {
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		metrics.StoreErrors.WithLabelValues("create").Inc()
		return fmt.Errorf("%w: create %s: %v", domain.ErrStorage, path, err)
	}
	return nil
}

// Delete removes the backing file. A missing file is a failure: callers
// deleting a store they never created is a misuse signal.
func (p *Provider[T]) Delete(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		metrics.StoreErrors.WithLabelValues("delete").Inc()
		return fmt.Errorf("%w: delete %s: %v", domain.ErrStorage, path, err)
	}
	return nil
}
