package sheets

import (
	"context"
	"fmt"

	"github.com/kidorama/sheetstore/internal/rowcodec"
	"github.com/kidorama/sheetstore/internal/schema"
	"github.com/kidorama/sheetstore/pkg/types"
)

// Backend implements types.Store over a spreadsheet Transport.
type Backend struct {
	tr          Transport
	collections map[types.EntityType]*collection
	users       *userCollection
	i18n        *translationStore
}

// New builds the production backend from service-account credentials,
// provisioning any missing sheet with its canonical header row.
func New(ctx context.Context, cfg types.SheetsConfig) (*Backend, error) {
	if missing := cfg.MissingCredentials(); len(missing) > 0 {
		return nil, &types.CredentialsError{Missing: missing}
	}
	tr, err := NewGoogleTransport(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewWithTransport(ctx, tr)
}

// NewWithTransport builds a backend over any Transport. Tests use it with
// an in-memory fake.
func NewWithTransport(ctx context.Context, tr Transport) (*Backend, error) {
	b := &Backend{
		tr:          tr,
		collections: make(map[types.EntityType]*collection),
	}
	for _, entity := range types.Entities() {
		if entity == types.EntityI18n {
			continue
		}
		b.collections[entity] = newCollection(entity, tr)
	}
	b.users = &userCollection{collection: b.collections[types.EntityUsers]}
	b.i18n = newTranslationStore(tr)

	if err := b.ensureSheets(ctx); err != nil {
		return nil, err
	}
	return b, nil
}

// ensureSheets creates every entity's sheet that does not exist yet and
// writes its header row from the canonical field list.
func (b *Backend) ensureSheets(ctx context.Context) error {
	titles, err := b.tr.SheetTitles(ctx)
	if err != nil {
		return fmt.Errorf("listing sheets: %w", err)
	}
	existing := make(map[string]bool, len(titles))
	for _, t := range titles {
		existing[t] = true
	}

	for _, entity := range types.Entities() {
		name := entity.SheetName()
		if existing[name] {
			continue
		}
		if err := b.tr.AddSheet(ctx, name); err != nil {
			return fmt.Errorf("creating sheet %s: %w", name, err)
		}
		header := rowcodec.EncodeTable(entity, nil, schema.Fields(entity))
		if err := b.tr.WriteRange(ctx, name, header); err != nil {
			return fmt.Errorf("writing header for %s: %w", name, err)
		}
	}
	return nil
}

// Collection returns the CRUD surface for the entity. The i18n table is
// reached through I18n instead.
func (b *Backend) Collection(entity types.EntityType) (types.Collection, error) {
	c, ok := b.collections[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownEntity, entity)
	}
	return c, nil
}

// Users returns the users table with its email lookup.
func (b *Backend) Users() types.UserCollection {
	return b.users
}

// I18n returns the translation store.
func (b *Backend) I18n() types.TranslationStore {
	return b.i18n
}
