// Package datastore selects and constructs the storage backend. It is the
// only place that knows about concrete backends; everything else holds a
// types.Store.
//
// Construction is two-stage: TryNew builds exactly the backend asked for
// and reports failure honestly; New applies the fallback policy on top —
// a non-memory backend that cannot initialize is replaced by the volatile
// memory backend, with the discarded error logged and surfaced in the
// returned Diagnostics rather than hidden.
package datastore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kidorama/sheetstore/internal/airtable"
	"github.com/kidorama/sheetstore/internal/memory"
	"github.com/kidorama/sheetstore/internal/sheets"
	"github.com/kidorama/sheetstore/pkg/types"
)

// Diagnostics reports what New actually constructed. When Fallback is
// true, Err holds the initialization error that forced the substitution.
type Diagnostics struct {
	Requested string // backend named in the config
	Backend   string // backend actually serving, "" if none could be built
	Fallback  bool
	Err       error
}

// TryNew constructs exactly the configured backend. An empty backend name
// defaults to memory. Credential and transport failures are returned, not
// recovered.
func TryNew(ctx context.Context, cfg types.Config) (types.Store, error) {
	if cfg.Backend == "" {
		cfg.Backend = types.BackendMemory
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case types.BackendSheets:
		store, err := sheets.New(ctx, cfg.Sheets)
		if err != nil {
			return nil, fmt.Errorf("sheets backend: %w", err)
		}
		return store, nil
	case types.BackendAirtable:
		return airtable.New(cfg.Airtable), nil
	default:
		return memory.New(), nil
	}
}

// New constructs the configured backend, falling back to the memory
// backend when a non-memory backend fails to initialize. The store it
// returns is never nil: if nothing at all could be built, every operation
// on the returned store fails with ErrStoreNotInitialized instead of
// crashing the host process.
func New(ctx context.Context, cfg types.Config, logger *slog.Logger) (types.Store, Diagnostics) {
	if logger == nil {
		logger = slog.Default()
	}
	requested := cfg.Backend
	if requested == "" {
		requested = types.BackendMemory
	}

	store, err := TryNew(ctx, cfg)
	if err == nil {
		return store, Diagnostics{Requested: requested, Backend: requested}
	}

	logger.Error("datastore initialization failed",
		"backend", requested, "error", err)

	if requested == types.BackendMemory {
		return Uninitialized(), Diagnostics{Requested: requested, Err: err}
	}

	logger.Warn("falling back to memory backend; data will not survive the process",
		"requested", requested)
	fallback, ferr := TryNew(ctx, types.Config{Backend: types.BackendMemory})
	if ferr != nil {
		logger.Error("memory fallback failed", "error", ferr)
		return Uninitialized(), Diagnostics{Requested: requested, Err: err}
	}

	return fallback, Diagnostics{
		Requested: requested,
		Backend:   types.BackendMemory,
		Fallback:  true,
		Err:       err,
	}
}
