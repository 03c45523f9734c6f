package sheets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedI18nSheet() map[string][][]string {
	return map[string][][]string{
		"i18n": {
			{"id", "locale", "key", "value"},
			{"t1", "en", "nav.home", "Home"},
			{"t2", "fr", "nav.home", "Accueil"},
			{"t3", "en", "nav.about", "About"},
			{"t4", "de", "nav.home", "Startseite"},
			{"t5", "en", "broken", ""}, // empty value rows are skipped
		},
	}
}

func TestTranslationStore_GetAll(t *testing.T) {
	s := newTranslationStore(newFakeTransport(seedI18nSheet()))

	dict, err := s.GetAll(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"nav.home": "Home", "nav.about": "About"}, dict["en"])
	assert.Equal(t, map[string]string{"nav.home": "Accueil"}, dict["fr"])
	// Locales beyond the default pair still come through.
	assert.Equal(t, map[string]string{"nav.home": "Startseite"}, dict["de"])
}

func TestTranslationStore_GetAll_EmptySheet(t *testing.T) {
	s := newTranslationStore(newFakeTransport(nil))

	dict, err := s.GetAll(context.Background())
	require.NoError(t, err)

	// The default locales are always present, even with no rows at all.
	assert.Equal(t, map[string]map[string]string{"en": {}, "fr": {}}, dict)
}

func TestTranslationStore_GetLocale(t *testing.T) {
	s := newTranslationStore(newFakeTransport(seedI18nSheet()))

	t.Run("known locale", func(t *testing.T) {
		dict, err := s.GetLocale(context.Background(), "fr")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"nav.home": "Accueil"}, dict)
	})

	t.Run("unknown locale is an empty map", func(t *testing.T) {
		dict, err := s.GetLocale(context.Background(), "es")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{}, dict)
	})
}

func TestTranslationStore_SetKey(t *testing.T) {
	t.Run("updates an existing row in place", func(t *testing.T) {
		tr := newFakeTransport(seedI18nSheet())
		s := newTranslationStore(tr)
		ctx := context.Background()

		require.NoError(t, s.SetKey(ctx, "fr", "nav.home", "Maison"))

		dict, err := s.GetLocale(ctx, "fr")
		require.NoError(t, err)
		assert.Equal(t, "Maison", dict["nav.home"])

		// In place means no extra row.
		assert.Len(t, tr.rows("i18n"), 6)
	})

	t.Run("appends a new row with a generated id", func(t *testing.T) {
		tr := newFakeTransport(seedI18nSheet())
		s := newTranslationStore(tr)
		ctx := context.Background()

		require.NoError(t, s.SetKey(ctx, "fr", "nav.about", "À propos"))

		dict, err := s.GetLocale(ctx, "fr")
		require.NoError(t, err)
		assert.Equal(t, "À propos", dict["nav.about"])

		rows := tr.rows("i18n")
		require.Len(t, rows, 7)
		assert.NotEmpty(t, rows[6][0], "appended row must carry an id")
	})

	t.Run("new value survives a second set", func(t *testing.T) {
		tr := newFakeTransport(nil)
		s := newTranslationStore(tr)
		ctx := context.Background()

		require.NoError(t, s.SetKey(ctx, "en", "cta.join", "Join us"))
		require.NoError(t, s.SetKey(ctx, "en", "cta.join", "Sign up"))

		dict, err := s.GetLocale(ctx, "en")
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"cta.join": "Sign up"}, dict)
	})
}
