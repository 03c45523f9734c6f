package datastore

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidorama/sheetstore/pkg/types"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTryNew(t *testing.T) {
	ctx := context.Background()

	t.Run("empty backend defaults to memory", func(t *testing.T) {
		store, err := TryNew(ctx, types.Config{})
		require.NoError(t, err)
		require.NotNil(t, store)

		docs, err := store.Users().List(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, docs)
	})

	t.Run("memory", func(t *testing.T) {
		store, err := TryNew(ctx, types.Config{Backend: types.BackendMemory})
		require.NoError(t, err)
		assert.NotNil(t, store)
	})

	t.Run("airtable constructs but is not usable", func(t *testing.T) {
		store, err := TryNew(ctx, types.Config{Backend: types.BackendAirtable})
		require.NoError(t, err)

		_, err = store.Users().List(ctx)
		assert.ErrorIs(t, err, types.ErrNotConfigured)
	})

	t.Run("unknown backend fails", func(t *testing.T) {
		_, err := TryNew(ctx, types.Config{Backend: "postgres"})
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
	})

	t.Run("sheets without credentials fails honestly", func(t *testing.T) {
		_, err := TryNew(ctx, types.Config{Backend: types.BackendSheets})

		var credErr *types.CredentialsError
		assert.ErrorAs(t, err, &credErr)
	})
}

func TestNew_ExactBackend(t *testing.T) {
	store, diag := New(context.Background(), types.Config{Backend: types.BackendMemory}, discardLogger())

	require.NotNil(t, store)
	assert.Equal(t, types.BackendMemory, diag.Requested)
	assert.Equal(t, types.BackendMemory, diag.Backend)
	assert.False(t, diag.Fallback)
	assert.NoError(t, diag.Err)
}

func TestNew_FallsBackToMemory(t *testing.T) {
	// Sheets with no credentials cannot construct; the process still gets a
	// working store, and the diagnostics say what happened.
	store, diag := New(context.Background(), types.Config{Backend: types.BackendSheets}, discardLogger())

	require.NotNil(t, store)
	assert.Equal(t, types.BackendSheets, diag.Requested)
	assert.Equal(t, types.BackendMemory, diag.Backend)
	assert.True(t, diag.Fallback)
	assert.Error(t, diag.Err)

	docs, err := store.Users().List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, docs)
}

func TestNew_UnknownBackendFallsBack(t *testing.T) {
	store, diag := New(context.Background(), types.Config{Backend: "postgres"}, discardLogger())

	require.NotNil(t, store)
	assert.True(t, diag.Fallback)
	assert.ErrorIs(t, diag.Err, types.ErrBackendUnknown)
}

func TestNew_NilLoggerIsAccepted(t *testing.T) {
	store, _ := New(context.Background(), types.Config{Backend: types.BackendMemory}, nil)
	assert.NotNil(t, store)
}

func TestUninitialized(t *testing.T) {
	store := Uninitialized()
	ctx := context.Background()

	coll, err := store.Collection(types.EntityActivities)
	require.NoError(t, err)

	// Entity validation matches the real backends.
	_, err = store.Collection(types.EntityType("nope"))
	assert.ErrorIs(t, err, types.ErrUnknownEntity)
	_, err = store.Collection(types.EntityI18n)
	assert.ErrorIs(t, err, types.ErrUnknownEntity)

	_, err = coll.List(ctx)
	assert.ErrorIs(t, err, types.ErrStoreNotInitialized)

	_, err = coll.Create(ctx, types.Document{})
	assert.ErrorIs(t, err, types.ErrStoreNotInitialized)

	_, err = store.Users().FindByEmail(ctx, "a@example.com")
	assert.ErrorIs(t, err, types.ErrStoreNotInitialized)

	_, err = store.I18n().GetAll(ctx)
	assert.ErrorIs(t, err, types.ErrStoreNotInitialized)

	err = store.I18n().SetKey(ctx, "en", "k", "v")
	assert.ErrorIs(t, err, types.ErrStoreNotInitialized)
}
