// Package memory implements the volatile in-process fallback Store. It is
// the degraded mode a deployment lands in when the configured backend
// cannot be constructed: same CRUD surface, process-lifetime data only.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kidorama/sheetstore/pkg/types"
)

// Backend implements types.Store with one in-process document list per
// entity type, shared across all requests for the process lifetime.
type Backend struct {
	mu   sync.RWMutex
	data map[types.EntityType][]types.Document
	i18n map[string]map[string]string
}

// New returns a memory backend seeded with demo users and activities, so a
// process that fell back here is still usable.
func New() *Backend {
	b := &Backend{
		data: make(map[types.EntityType][]types.Document),
		i18n: map[string]map[string]string{"en": {}, "fr": {}},
	}
	for _, entity := range types.Entities() {
		b.data[entity] = nil
	}
	b.data[types.EntityUsers] = seedUsers()
	b.data[types.EntityActivities] = seedActivities()
	return b
}

func (b *Backend) Collection(entity types.EntityType) (types.Collection, error) {
	if entity == types.EntityI18n || !entity.Valid() {
		return nil, types.ErrUnknownEntity
	}
	return &collection{backend: b, entity: entity}, nil
}

func (b *Backend) Users() types.UserCollection {
	return &userCollection{collection{backend: b, entity: types.EntityUsers}}
}

func (b *Backend) I18n() types.TranslationStore {
	return &translationStore{backend: b}
}

// collection implements types.Collection over one entity's document slice.
type collection struct {
	backend *Backend
	entity  types.EntityType
}

func (c *collection) List(ctx context.Context) ([]types.Document, error) {
	c.backend.mu.RLock()
	defer c.backend.mu.RUnlock()

	docs := c.backend.data[c.entity]
	out := make([]types.Document, len(docs))
	for i, doc := range docs {
		out[i] = doc.Clone()
	}
	return out, nil
}

func (c *collection) Get(ctx context.Context, id string) (types.Document, error) {
	c.backend.mu.RLock()
	defer c.backend.mu.RUnlock()

	for _, doc := range c.backend.data[c.entity] {
		if doc.ID() == id {
			return doc.Clone(), nil
		}
	}
	return nil, nil
}

func (c *collection) Create(ctx context.Context, doc types.Document) (types.Document, error) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()

	stored := doc.Clone()
	if stored.ID() == "" {
		stored["id"] = uuid.NewString()
	}
	c.backend.data[c.entity] = append(c.backend.data[c.entity], stored)
	return stored.Clone(), nil
}

func (c *collection) Update(ctx context.Context, id string, patch types.Document) (types.Document, error) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()

	docs := c.backend.data[c.entity]
	for i, doc := range docs {
		if doc.ID() == id {
			merged := doc.Merge(patch)
			docs[i] = merged
			return merged.Clone(), nil
		}
	}
	return nil, nil
}

func (c *collection) Remove(ctx context.Context, id string) (bool, error) {
	c.backend.mu.Lock()
	defer c.backend.mu.Unlock()

	docs := c.backend.data[c.entity]
	for i, doc := range docs {
		if doc.ID() == id {
			c.backend.data[c.entity] = append(docs[:i], docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type userCollection struct {
	collection
}

func (u *userCollection) FindByEmail(ctx context.Context, email string) (types.Document, error) {
	u.backend.mu.RLock()
	defer u.backend.mu.RUnlock()

	for _, doc := range u.backend.data[types.EntityUsers] {
		if addr, _ := doc["email"].(string); addr == email {
			return doc.Clone(), nil
		}
	}
	return nil, nil
}

type translationStore struct {
	backend *Backend
}

func (s *translationStore) GetAll(ctx context.Context) (map[string]map[string]string, error) {
	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	out := make(map[string]map[string]string, len(s.backend.i18n))
	for locale, dict := range s.backend.i18n {
		copied := make(map[string]string, len(dict))
		for k, v := range dict {
			copied[k] = v
		}
		out[locale] = copied
	}
	return out, nil
}

func (s *translationStore) GetLocale(ctx context.Context, locale string) (map[string]string, error) {
	s.backend.mu.RLock()
	defer s.backend.mu.RUnlock()

	dict := s.backend.i18n[locale]
	out := make(map[string]string, len(dict))
	for k, v := range dict {
		out[k] = v
	}
	return out, nil
}

func (s *translationStore) SetKey(ctx context.Context, locale, key, value string) error {
	s.backend.mu.Lock()
	defer s.backend.mu.Unlock()

	if s.backend.i18n[locale] == nil {
		s.backend.i18n[locale] = make(map[string]string)
	}
	s.backend.i18n[locale][key] = value
	return nil
}

func seedUsers() []types.Document {
	now := time.Now().UTC().Format(time.RFC3339)
	return []types.Document{
		{
			"id":        "user-1",
			"email":     "admin@example.com",
			"password":  "admin123",
			"role":      "admin",
			"profile":   map[string]any{},
			"createdAt": now,
		},
		{
			"id":        "user-2",
			"email":     "provider@example.com",
			"password":  "provider123",
			"role":      "provider",
			"profile":   map[string]any{},
			"createdAt": now,
		},
	}
}

func seedActivities() []types.Document {
	now := time.Now().UTC().Format(time.RFC3339)
	return []types.Document{
		{
			"id":           "activity-1",
			"title":        map[string]any{"en": "Music Workshop", "fr": "Atelier Musique"},
			"description":  map[string]any{"en": "Introduction to music for children", "fr": "Introduction à la musique pour enfants"},
			"categories":   []string{"music", "arts"},
			"ageMin":       float64(6),
			"ageMax":       float64(9),
			"price":        map[string]any{"amount": float64(1500), "currency": "eur"},
			"schedule":     []any{map[string]any{"date": "2025-11-10", "time": "14:00", "location": "Paris 11e"}},
			"neighborhood": "11e",
			"images":       []string{"https://via.placeholder.com/300"},
			"providerId":   "provider-1",
			"createdAt":    now,
			"updatedAt":    now,
		},
		{
			"id":           "activity-2",
			"title":        map[string]any{"en": "Soccer Training", "fr": "Entraînement Football"},
			"description":  map[string]any{"en": "Weekly soccer training sessions", "fr": "Entraînements de football hebdomadaires"},
			"categories":   []string{"sports"},
			"ageMin":       float64(8),
			"ageMax":       float64(12),
			"price":        map[string]any{"amount": float64(2000), "currency": "eur"},
			"schedule":     []any{map[string]any{"date": "2025-11-15", "time": "10:00", "location": "Paris 16e"}},
			"neighborhood": "16e",
			"images":       []string{"https://via.placeholder.com/300"},
			"providerId":   "provider-2",
			"createdAt":    now,
			"updatedAt":    now,
		},
		{
			"id":           "activity-3",
			"title":        map[string]any{"en": "Art & Craft", "fr": "Arts et Créations"},
			"description":  map[string]any{"en": "Creative art and craft sessions", "fr": "Ateliers d'arts créatifs"},
			"categories":   []string{"arts", "nature"},
			"ageMin":       float64(4),
			"ageMax":       float64(7),
			"price":        map[string]any{"amount": float64(1200), "currency": "eur"},
			"schedule":     []any{map[string]any{"date": "2025-11-20", "time": "15:00", "location": "Paris 5e"}},
			"neighborhood": "5e",
			"images":       []string{"https://via.placeholder.com/300"},
			"providerId":   "provider-3",
			"createdAt":    now,
			"updatedAt":    now,
		},
	}
}
