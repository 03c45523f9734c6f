package sheets

import (
	"context"

	"github.com/google/uuid"

	"github.com/kidorama/sheetstore/pkg/types"
)

// translationStore implements types.TranslationStore over the i18n sheet,
// whose rows are (locale, key, value) triples.
type translationStore struct {
	c *collection
}

func newTranslationStore(tr Transport) *translationStore {
	return &translationStore{c: newCollection(types.EntityI18n, tr)}
}

func (s *translationStore) GetAll(ctx context.Context) (map[string]map[string]string, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	docs, _, err := s.c.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	dict := map[string]map[string]string{"en": {}, "fr": {}}
	for _, doc := range docs {
		locale, _ := doc["locale"].(string)
		key, _ := doc["key"].(string)
		value, _ := doc["value"].(string)
		if locale == "" || key == "" || value == "" {
			continue
		}
		if dict[locale] == nil {
			dict[locale] = map[string]string{}
		}
		dict[locale][key] = value
	}
	return dict, nil
}

func (s *translationStore) GetLocale(ctx context.Context, locale string) (map[string]string, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if dict, ok := all[locale]; ok {
		return dict, nil
	}
	return map[string]string{}, nil
}

func (s *translationStore) SetKey(ctx context.Context, locale, key, value string) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	docs, layout, err := s.c.snapshot(ctx)
	if err != nil {
		return err
	}

	found := false
	for _, doc := range docs {
		l, _ := doc["locale"].(string)
		k, _ := doc["key"].(string)
		if l == locale && k == key {
			doc["value"] = value
			found = true
			break
		}
	}
	if !found {
		// New rows need an id or the next read's id filter drops them.
		docs = append(docs, types.Document{
			"id":     uuid.NewString(),
			"locale": locale,
			"key":    key,
			"value":  value,
		})
	}

	return s.c.writeBack(ctx, docs, layout)
}
