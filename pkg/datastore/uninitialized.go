package datastore

import (
	"context"

	"github.com/kidorama/sheetstore/pkg/types"
)

// Uninitialized returns the terminal no-store-bound handle: every
// operation fails with ErrStoreNotInitialized. It exists so a process
// whose backend construction failed completely still serves explicit
// errors instead of panicking on a nil store.
func Uninitialized() types.Store {
	return uninitializedStore{}
}

type uninitializedStore struct{}

func (uninitializedStore) Collection(entity types.EntityType) (types.Collection, error) {
	if entity == types.EntityI18n || !entity.Valid() {
		return nil, types.ErrUnknownEntity
	}
	return uninitializedCollection{}, nil
}

func (uninitializedStore) Users() types.UserCollection {
	return uninitializedCollection{}
}

func (uninitializedStore) I18n() types.TranslationStore {
	return uninitializedCollection{}
}

type uninitializedCollection struct{}

func (uninitializedCollection) List(ctx context.Context) ([]types.Document, error) {
	return nil, types.ErrStoreNotInitialized
}

func (uninitializedCollection) Get(ctx context.Context, id string) (types.Document, error) {
	return nil, types.ErrStoreNotInitialized
}

func (uninitializedCollection) Create(ctx context.Context, doc types.Document) (types.Document, error) {
	return nil, types.ErrStoreNotInitialized
}

func (uninitializedCollection) Update(ctx context.Context, id string, patch types.Document) (types.Document, error) {
	return nil, types.ErrStoreNotInitialized
}

func (uninitializedCollection) Remove(ctx context.Context, id string) (bool, error) {
	return false, types.ErrStoreNotInitialized
}

func (uninitializedCollection) FindByEmail(ctx context.Context, email string) (types.Document, error) {
	return nil, types.ErrStoreNotInitialized
}

func (uninitializedCollection) GetAll(ctx context.Context) (map[string]map[string]string, error) {
	return nil, types.ErrStoreNotInitialized
}

func (uninitializedCollection) GetLocale(ctx context.Context, locale string) (map[string]string, error) {
	return nil, types.ErrStoreNotInitialized
}

func (uninitializedCollection) SetKey(ctx context.Context, locale, key, value string) error {
	return types.ErrStoreNotInitialized
}
