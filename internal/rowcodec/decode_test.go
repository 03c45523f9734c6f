package rowcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidorama/sheetstore/pkg/types"
)

func TestDecodeTable_Activities(t *testing.T) {
	rows := [][]string{
		{"ID", "Titre Anglais", "Titre Français", "Catégories", "Âge Min", "Prix", "Adresses", "Quartier", "Images"},
		{"a1", "Pottery", "Poterie", "art, craft", "6", "25", "12 Rue de Belleville, 75019 Paris", "", "0"},
	}

	docs, layout := DecodeTable(types.EntityActivities, rows)
	require.Len(t, docs, 1)

	want := types.Document{
		"id":           "a1",
		"title":        map[string]any{"en": "Pottery", "fr": "Poterie"},
		"categories":   []string{"art", "craft"},
		"ageMin":       6.0,
		"price":        map[string]any{"amount": 25.0, "currency": "eur"},
		"addresses":    "12 Rue de Belleville, 75019 Paris",
		"neighborhood": "19e",
		"images":       []string{},
	}
	assert.Equal(t, want, docs[0])

	// Bilingual halves collapse into one composite column at the position
	// of the first half.
	assert.Equal(t,
		[]string{"id", "title", "categories", "ageMin", "price", "addresses", "neighborhood", "images"},
		layout)
}

func TestDecodeTable_ImagesZeroCell(t *testing.T) {
	// "images" contains "age", so the cell is numerically coerced before
	// the list fix runs; a zero must still come out as an empty list.
	rows := [][]string{
		{"id", "Images"},
		{"a1", "0"},
	}

	docs, _ := DecodeTable(types.EntityActivities, rows)
	require.Len(t, docs, 1)
	assert.Equal(t, []string{}, docs[0]["images"])
}

func TestDecodeTable_BilingualLayoutOnlySplicesWhenMerged(t *testing.T) {
	t.Run("no row merges", func(t *testing.T) {
		rows := [][]string{
			{"id", "title_en", "title_fr"},
			{"a1", "", ""},
		}

		docs, layout := DecodeTable(types.EntityActivities, rows)
		require.Len(t, docs, 1)
		assert.Equal(t, []string{"id", "title_en", "title_fr"}, layout)

		_, hasComposite := docs[0]["title"]
		assert.False(t, hasComposite)
		assert.Equal(t, "", docs[0]["title_en"])
	})

	t.Run("mixed rows", func(t *testing.T) {
		rows := [][]string{
			{"id", "title_en", "title_fr"},
			{"a1", "Pottery", "Poterie"},
			{"a2", "", ""},
		}

		docs, layout := DecodeTable(types.EntityActivities, rows)
		require.Len(t, docs, 2)
		assert.Equal(t, []string{"id", "title"}, layout)
		assert.Equal(t, map[string]any{"en": "Pottery", "fr": "Poterie"}, docs[0]["title"])

		// The row whose halves were all empty drops them, so the next
		// encode does not re-grow the header with the decomposed pair.
		_, ok := docs[1]["title_en"]
		assert.False(t, ok)
		_, ok = docs[1]["title_fr"]
		assert.False(t, ok)
	})
}

func TestDecodeTable_RowsWithoutIDAreDropped(t *testing.T) {
	rows := [][]string{
		{"id", "email"},
		{"", "ghost@example.com"},
		{"u1", "real@example.com"},
		{"u2"}, // short row still has an id
	}

	docs, _ := DecodeTable(types.EntityUsers, rows)
	require.Len(t, docs, 2)
	assert.Equal(t, "u1", docs[0].ID())
	assert.Equal(t, "u2", docs[1].ID())
}

func TestDecodeTable_EmptyInput(t *testing.T) {
	t.Run("no rows", func(t *testing.T) {
		docs, layout := DecodeTable(types.EntityUsers, nil)
		assert.Empty(t, docs)
		assert.Nil(t, layout)
	})

	t.Run("header only", func(t *testing.T) {
		docs, layout := DecodeTable(types.EntityUsers, [][]string{{"id", "email"}})
		assert.Empty(t, docs)
		assert.Equal(t, []string{"id", "email"}, layout)
	})
}

func TestDecodeTable_DuplicateHeadersCollapse(t *testing.T) {
	// Two spellings resolving to the same field keep one layout slot; the
	// later column's value overwrites the earlier one row by row.
	rows := [][]string{
		{"id", "Email", "E-mail"},
		{"u1", "old@example.com", "new@example.com"},
	}

	docs, layout := DecodeTable(types.EntityUsers, rows)
	require.Len(t, docs, 1)
	assert.Equal(t, []string{"id", "email"}, layout)
	assert.Equal(t, "new@example.com", docs[0]["email"])
}

func TestDecodeRow_Typing(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		cell   string
		want   any
		absent bool
	}{
		{name: "id stays verbatim even when numeric", field: "id", cell: "12345", want: "12345"},
		{name: "json object parses", field: "profile", cell: `{"en":"Hi","fr":"Salut"}`, want: map[string]any{"en": "Hi", "fr": "Salut"}},
		{name: "json array parses", field: "pages", cell: `["/a","/b"]`, want: []any{"/a", "/b"}},
		{name: "malformed json stays string", field: "profile", cell: `{broken`, want: `{broken`},
		{name: "waitlist true", field: "waitlist", cell: "true", want: true},
		{name: "waitlist oui", field: "waitlist", cell: "oui", want: true},
		{name: "waitlist one", field: "waitlist", cell: "1", want: true},
		{name: "waitlist anything else false", field: "waitlist", cell: "no", want: false},
		{name: "waitlist empty false", field: "waitlist", cell: "", want: false},
		{name: "status stays free-form", field: "status", cell: "pending", want: "pending"},
		{name: "status boolean text stays string", field: "status", cell: "true", want: "true"},
		{name: "age coerces", field: "ageMin", cell: "6", want: 6.0},
		{name: "price coerces", field: "price", cell: "25.5", want: 25.5},
		{name: "rating coerces", field: "rating", cell: "4", want: 4.0},
		{name: "pageViews contains age and coerces", field: "pageViews", cell: "3", want: 3.0},
		{name: "userAgent does not coerce", field: "userAgent", cell: "Mozilla/5.0", want: "Mozilla/5.0"},
		{name: "unparseable numeric stays string", field: "ageMax", cell: "dix", want: "dix"},
		{name: "empty numeric stays empty string", field: "ageMax", cell: "", want: ""},
		{name: "plain string", field: "email", cell: "a@b.fr", want: "a@b.fr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := decodeRow([]string{tt.field}, []string{tt.cell})
			got, ok := doc[tt.field]
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeRow_ShortRow(t *testing.T) {
	doc := decodeRow([]string{"id", "email", "ageMin", "role"}, []string{"u1", "a@b.fr"})

	assert.Equal(t, "u1", doc["id"])
	assert.Equal(t, "a@b.fr", doc["email"])
	// Numeric fields missing from the row keep an explicit empty string.
	assert.Equal(t, "", doc["ageMin"])
	// Plain fields missing from the row are simply absent.
	_, ok := doc["role"]
	assert.False(t, ok)
}

func TestMergeBilingual(t *testing.T) {
	tests := []struct {
		name       string
		doc        types.Document
		want       types.Document
		wantMerged bool
	}{
		{
			name:       "both halves present",
			doc:        types.Document{"title_en": "Hello", "title_fr": "Bonjour"},
			want:       types.Document{"title": map[string]any{"en": "Hello", "fr": "Bonjour"}},
			wantMerged: true,
		},
		{
			name:       "one half present",
			doc:        types.Document{"title_en": "Hello", "title_fr": ""},
			want:       types.Document{"title": map[string]any{"en": "Hello", "fr": ""}},
			wantMerged: true,
		},
		{
			name: "both halves empty leaves the doc alone",
			doc:  types.Document{"title_en": "", "title_fr": ""},
			want: types.Document{"title_en": "", "title_fr": ""},
		},
		{
			name: "halves absent leaves the doc alone",
			doc:  types.Document{"id": "a1"},
			want: types.Document{"id": "a1"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := mergeBilingual(tt.doc, "title", "title_en", "title_fr")
			assert.Equal(t, tt.wantMerged, merged)
			assert.Equal(t, tt.want, tt.doc)
		})
	}
}

func TestSpliceBilingual(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		want   []string
	}{
		{
			name:   "pair replaced in place",
			layout: []string{"id", "title_en", "title_fr", "price"},
			want:   []string{"id", "title", "price"},
		},
		{
			name:   "separated halves collapse to first position",
			layout: []string{"id", "title_fr", "price", "title_en"},
			want:   []string{"id", "title", "price"},
		},
		{
			name:   "single half still replaced",
			layout: []string{"id", "title_en", "price"},
			want:   []string{"id", "title", "price"},
		},
		{
			name:   "no halves leaves layout alone",
			layout: []string{"id", "price"},
			want:   []string{"id", "price"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spliceBilingual(tt.layout, "title", "title_en", "title_fr"))
		})
	}
}

func TestFixLists(t *testing.T) {
	t.Run("categories split and trimmed", func(t *testing.T) {
		doc := types.Document{"categories": " art , craft ,, sport "}
		fixLists(doc)
		assert.Equal(t, []string{"art", "craft", "sport"}, doc["categories"])
	})

	t.Run("images zero means none", func(t *testing.T) {
		doc := types.Document{"images": "0"}
		fixLists(doc)
		assert.Equal(t, []string{}, doc["images"])
	})

	t.Run("images coerced numeric zero means none", func(t *testing.T) {
		doc := types.Document{"images": 0.0}
		fixLists(doc)
		assert.Equal(t, []string{}, doc["images"])
	})

	t.Run("images absent stays absent", func(t *testing.T) {
		doc := types.Document{"id": "a1"}
		fixLists(doc)
		_, ok := doc["images"]
		assert.False(t, ok)
	})

	t.Run("already-parsed list untouched", func(t *testing.T) {
		doc := types.Document{"images": []any{"a.jpg"}}
		fixLists(doc)
		assert.Equal(t, []any{"a.jpg"}, doc["images"])
	})
}

func TestInferNeighborhood(t *testing.T) {
	tests := []struct {
		name string
		doc  types.Document
		want any
	}{
		{
			name: "missing neighborhood inferred from address",
			doc:  types.Document{"addresses": "5 Rue Jussieu"},
			want: "5e",
		},
		{
			name: "empty neighborhood inferred",
			doc:  types.Document{"neighborhood": "", "addresses": "75020 Paris"},
			want: "20e",
		},
		{
			name: "existing neighborhood preserved",
			doc:  types.Document{"neighborhood": "Marais", "addresses": "75020 Paris"},
			want: "Marais",
		},
		{
			name: "no address leaves it empty",
			doc:  types.Document{"neighborhood": ""},
			want: "",
		},
		{
			name: "unmatchable address leaves it empty",
			doc:  types.Document{"neighborhood": "", "addresses": "Somewhere in Lyon"},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inferNeighborhood(tt.doc)
			assert.Equal(t, tt.want, tt.doc["neighborhood"])
		})
	}
}
