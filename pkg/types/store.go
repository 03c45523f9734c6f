package types

import (
	"context"
	"errors"
)

// Collection provides uniform CRUD operations for a single entity type.
// Absent ids are soft failures: Get and Update return a nil Document,
// Remove returns false. Errors are reserved for transport and backend
// failures.
type Collection interface {
	// List returns every valid document in the table. Rows without a
	// resolvable id are excluded.
	List(ctx context.Context) ([]Document, error)

	// Get returns the document with the given id, or nil if absent.
	Get(ctx context.Context, id string) (Document, error)

	// Create stores doc, generating a fresh id when doc has none, and
	// returns the stored document.
	Create(ctx context.Context, doc Document) (Document, error)

	// Update shallow-merges patch over the document with the given id and
	// returns the merged document, or nil (and no write) if the id is
	// absent.
	Update(ctx context.Context, id string, patch Document) (Document, error)

	// Remove deletes the document with the given id. Returns false (and
	// performs no write) if the id is absent.
	Remove(ctx context.Context, id string) (bool, error)
}

// UserCollection is the users table surface: generic CRUD plus email lookup.
type UserCollection interface {
	Collection

	// FindByEmail returns the user with the given email, or nil if absent.
	FindByEmail(ctx context.Context, email string) (Document, error)
}

// TranslationStore is the i18n table surface. Translations are rows of
// (locale, key, value) exposed as per-locale dictionaries instead of
// generic CRUD.
type TranslationStore interface {
	// GetAll returns every translation grouped by locale.
	GetAll(ctx context.Context) (map[string]map[string]string, error)

	// GetLocale returns the key -> value dictionary for one locale.
	GetLocale(ctx context.Context, locale string) (map[string]string, error)

	// SetKey creates or updates one translation.
	SetKey(ctx context.Context, locale, key, value string) error
}

// Store is the backend-agnostic handle applications hold. Every backend
// (sheets, memory, airtable stub) exposes the same shape.
type Store interface {
	// Collection returns the CRUD surface for the given entity type.
	// Returns ErrUnknownEntity for entity types outside the fixed set and
	// for EntityI18n, which is reached through I18n instead.
	Collection(entity EntityType) (Collection, error)

	// Users returns the users table with its email lookup.
	Users() UserCollection

	// I18n returns the translation store.
	I18n() TranslationStore
}

// Store operation errors.
var (
	ErrUnknownEntity       = errors.New("unknown entity type")
	ErrNotConfigured       = errors.New("airtable store not configured")
	ErrStoreNotInitialized = errors.New("store not initialized")
)
