// Package airtable holds the key-value stub backend. It satisfies the
// Store surface so the rest of the system wires up, but every operation
// fails with ErrNotConfigured until a real integration is supplied.
package airtable

import (
	"context"

	"github.com/kidorama/sheetstore/pkg/types"
)

// Backend implements types.Store as a not-yet-configured stub.
type Backend struct {
	cfg types.AirtableConfig
}

// New returns the stub backend. Construction always succeeds; the missing
// integration surfaces on first use.
func New(cfg types.AirtableConfig) *Backend {
	return &Backend{cfg: cfg}
}

func (b *Backend) Collection(entity types.EntityType) (types.Collection, error) {
	if entity == types.EntityI18n || !entity.Valid() {
		return nil, types.ErrUnknownEntity
	}
	return notConfiguredCollection{}, nil
}

func (b *Backend) Users() types.UserCollection {
	return notConfiguredCollection{}
}

func (b *Backend) I18n() types.TranslationStore {
	return notConfiguredCollection{}
}

type notConfiguredCollection struct{}

func (notConfiguredCollection) List(ctx context.Context) ([]types.Document, error) {
	return nil, types.ErrNotConfigured
}

func (notConfiguredCollection) Get(ctx context.Context, id string) (types.Document, error) {
	return nil, types.ErrNotConfigured
}

func (notConfiguredCollection) Create(ctx context.Context, doc types.Document) (types.Document, error) {
	return nil, types.ErrNotConfigured
}

func (notConfiguredCollection) Update(ctx context.Context, id string, patch types.Document) (types.Document, error) {
	return nil, types.ErrNotConfigured
}

func (notConfiguredCollection) Remove(ctx context.Context, id string) (bool, error) {
	return false, types.ErrNotConfigured
}

func (notConfiguredCollection) FindByEmail(ctx context.Context, email string) (types.Document, error) {
	return nil, types.ErrNotConfigured
}

func (notConfiguredCollection) GetAll(ctx context.Context) (map[string]map[string]string, error) {
	return nil, types.ErrNotConfigured
}

func (notConfiguredCollection) GetLocale(ctx context.Context, locale string) (map[string]string, error) {
	return nil, types.ErrNotConfigured
}

func (notConfiguredCollection) SetKey(ctx context.Context, locale, key, value string) error {
	return types.ErrNotConfigured
}
