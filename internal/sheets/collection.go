package sheets

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/kidorama/sheetstore/internal/rowcodec"
	"github.com/kidorama/sheetstore/pkg/types"
)

// collection implements types.Collection for one entity type over the
// snapshot-mutate-write protocol: read the whole table, decode, mutate the
// document list in memory, encode, overwrite the whole table.
//
// The mutex serializes the full read-modify-write of each mutating verb.
// Without it two in-process writers could read the same snapshot and the
// second write would silently drop the first one's change. Nothing
// coordinates separate processes pointed at the same spreadsheet; that gap
// is inherent to the backing store.
type collection struct {
	mu     sync.RWMutex
	entity types.EntityType
	sheet  string
	tr     Transport
}

func newCollection(entity types.EntityType, tr Transport) *collection {
	return &collection{entity: entity, sheet: entity.SheetName(), tr: tr}
}

// snapshot reads and decodes the current full table. A missing sheet is an
// empty table, not an error.
func (c *collection) snapshot(ctx context.Context) ([]types.Document, []string, error) {
	rows, err := c.tr.ReadRange(ctx, c.sheet)
	if errors.Is(err, ErrSheetMissing) {
		return []types.Document{}, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", c.sheet, err)
	}
	docs, layout := rowcodec.DecodeTable(c.entity, rows)
	return docs, layout, nil
}

// writeBack encodes the document list against the current layout and
// overwrites the table.
func (c *collection) writeBack(ctx context.Context, docs []types.Document, layout []string) error {
	rows := rowcodec.EncodeTable(c.entity, docs, layout)
	if err := c.tr.WriteRange(ctx, c.sheet, rows); err != nil {
		return fmt.Errorf("writing %s: %w", c.sheet, err)
	}
	return nil
}

func (c *collection) List(ctx context.Context) ([]types.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	docs, _, err := c.snapshot(ctx)
	return docs, err
}

func (c *collection) Get(ctx context.Context, id string) (types.Document, error) {
	docs, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if doc.ID() == id {
			return doc, nil
		}
	}
	return nil, nil
}

func (c *collection) Create(ctx context.Context, doc types.Document) (types.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	docs, layout, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	stored := doc.Clone()
	if stored.ID() == "" {
		stored["id"] = uuid.NewString()
	}
	docs = append(docs, stored)

	if err := c.writeBack(ctx, docs, layout); err != nil {
		return nil, err
	}
	return stored, nil
}

func (c *collection) Update(ctx context.Context, id string, patch types.Document) (types.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	docs, layout, err := c.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, doc := range docs {
		if doc.ID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil
	}

	merged := docs[idx].Merge(patch)
	docs[idx] = merged

	if err := c.writeBack(ctx, docs, layout); err != nil {
		return nil, err
	}
	return merged, nil
}

func (c *collection) Remove(ctx context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	docs, layout, err := c.snapshot(ctx)
	if err != nil {
		return false, err
	}

	kept := docs[:0]
	removed := false
	for _, doc := range docs {
		if doc.ID() == id {
			removed = true
			continue
		}
		kept = append(kept, doc)
	}
	if !removed {
		return false, nil
	}

	if err := c.writeBack(ctx, kept, layout); err != nil {
		return false, err
	}
	return true, nil
}

// userCollection adds the email lookup the users table needs.
type userCollection struct {
	*collection
}

func (u *userCollection) FindByEmail(ctx context.Context, email string) (types.Document, error) {
	docs, err := u.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if addr, _ := doc["email"].(string); addr == email {
			return doc, nil
		}
	}
	return nil, nil
}
