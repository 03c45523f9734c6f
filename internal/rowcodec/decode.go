// Package rowcodec converts between raw spreadsheet matrices and typed
// documents. Decoding owns type coercion, bilingual field composition, and
// derived-field inference; encoding flattens documents back onto a header
// layout while preserving columns the schema does not know about.
//
// Decoding is tolerant by contract: malformed cells degrade to best-effort
// string values, never errors. The worst outcome for a bad cell is that it
// stays a raw string.
package rowcodec

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/kidorama/sheetstore/internal/schema"
	"github.com/kidorama/sheetstore/pkg/types"
)

// DecodeTable converts a raw table into documents. rows[0] is the header
// row; rows[1:] are data rows. It returns the decoded documents together
// with the canonical header layout (first occurrence wins when two raw
// headers resolve to the same field). Rows without a resolvable id are
// excluded from the result.
func DecodeTable(entity types.EntityType, rows [][]string) ([]types.Document, []string) {
	if len(rows) == 0 {
		return []types.Document{}, nil
	}

	header := rows[0]
	columnFields := make([]string, len(header))
	var layout []string
	seen := make(map[string]bool, len(header))
	for i, raw := range header {
		field := schema.Resolve(entity, raw)
		columnFields[i] = field
		if !seen[field] {
			seen[field] = true
			layout = append(layout, field)
		}
	}

	docs := make([]types.Document, 0, len(rows)-1)
	titleMerged, descMerged := false, false
	for _, row := range rows[1:] {
		doc := decodeRow(columnFields, row)
		titleMerged = mergeBilingual(doc, "title", "title_en", "title_fr") || titleMerged
		descMerged = mergeBilingual(doc, "description", "description_en", "description_fr") || descMerged
		fixLists(doc)
		fixPrice(doc)
		if entity == types.EntityActivities {
			inferNeighborhood(doc)
		}
		if doc.ID() != "" {
			docs = append(docs, doc)
		}
	}

	// Only collapse the layout when a row actually merged; otherwise the
	// decomposed columns survive untouched. Once the composite column
	// exists, rows whose halves were all empty drop them so the next
	// encode does not re-grow the header.
	if titleMerged {
		layout = spliceBilingual(layout, "title", "title_en", "title_fr")
		dropEmptyHalves(docs, "title_en", "title_fr")
	}
	if descMerged {
		layout = spliceBilingual(layout, "description", "description_en", "description_fr")
		dropEmptyHalves(docs, "description_en", "description_fr")
	}
	return docs, layout
}

// decodeRow assigns one typed value per column. The typing rules are tried
// in priority order; whichever fires first wins for that cell.
func decodeRow(columnFields []string, row []string) types.Document {
	doc := make(types.Document, len(columnFields))
	for i, field := range columnFields {
		val := ""
		if i < len(row) {
			val = row[i]
		}

		switch {
		case field == "id":
			doc["id"] = val

		case val != "" && (val[0] == '{' || val[0] == '['):
			var parsed any
			if err := json.Unmarshal([]byte(val), &parsed); err == nil {
				doc[field] = parsed
			} else {
				doc[field] = val
			}

		case field == "waitlist":
			// status stays a free-form string even though the sheets also
			// hold true/false in it; lifecycle values like "pending" must
			// survive the round trip.
			doc[field] = val == "true" || val == "1" || val == "yes" || val == "oui"

		case strings.Contains(field, "age") || strings.Contains(field, "price") || field == "rating":
			if val == "" {
				doc[field] = val
			} else if n, err := strconv.ParseFloat(val, 64); err == nil {
				doc[field] = n
			} else {
				doc[field] = val
			}

		case i < len(row):
			doc[field] = val
		}
	}
	return doc
}

// mergeBilingual folds fieldEN/fieldFR into a single {en, fr} object when
// either holds text, deleting both source keys. A row where both halves are
// empty keeps its plain cells. Reports whether a merge happened.
func mergeBilingual(doc types.Document, field, fieldEN, fieldFR string) bool {
	en, _ := doc[fieldEN].(string)
	fr, _ := doc[fieldFR].(string)
	if en == "" && fr == "" {
		return false
	}
	doc[field] = map[string]any{"en": en, "fr": fr}
	delete(doc, fieldEN)
	delete(doc, fieldFR)
	return true
}

// dropEmptyHalves removes empty-string halves left behind in rows that did
// not merge.
func dropEmptyHalves(docs []types.Document, fieldEN, fieldFR string) {
	for _, doc := range docs {
		if s, ok := doc[fieldEN].(string); ok && s == "" {
			delete(doc, fieldEN)
		}
		if s, ok := doc[fieldFR].(string); ok && s == "" {
			delete(doc, fieldFR)
		}
	}
}

// spliceBilingual replaces the decomposed column pair with the composite
// field at the position of whichever half appeared first.
func spliceBilingual(layout []string, field, fieldEN, fieldFR string) []string {
	pos := -1
	for i, name := range layout {
		if name == fieldEN || name == fieldFR {
			pos = i
			break
		}
	}
	if pos < 0 {
		return layout
	}

	out := make([]string, 0, len(layout))
	for _, name := range layout {
		if name == fieldEN || name == fieldFR {
			continue
		}
		out = append(out, name)
	}
	if pos > len(out) {
		pos = len(out)
	}
	out = append(out[:pos], append([]string{field}, out[pos:]...)...)
	return out
}

// fixLists turns comma-separated categories and images cells into string
// lists. An images cell holding "0" (the sheet's way of saying none) or
// nothing at all becomes an empty list. The field name "images" contains
// "age", so a bare "0" cell arrives here already coerced to a number; zero
// still means no images.
func fixLists(doc types.Document) {
	if s, ok := doc["categories"].(string); ok {
		doc["categories"] = splitList(s)
	}
	switch v := doc["images"].(type) {
	case string:
		if v == "0" || v == "" {
			doc["images"] = []string{}
		} else {
			doc["images"] = splitList(v)
		}
	case float64:
		if v == 0 {
			doc["images"] = []string{}
		}
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// fixPrice wraps a bare numeric price as a money object.
func fixPrice(doc types.Document) {
	if n, ok := doc["price"].(float64); ok {
		doc["price"] = map[string]any{"amount": n, "currency": "eur"}
	}
}

// inferNeighborhood backfills a missing neighborhood from free-text address
// data. Applies to activities only.
func inferNeighborhood(doc types.Document) {
	switch v := doc["neighborhood"].(type) {
	case nil:
		// Absent: infer below.
	case string:
		if v != "" {
			return
		}
	default:
		return
	}
	addr, _ := doc["addresses"].(string)
	if addr == "" {
		return
	}
	if hood := NeighborhoodFromAddress(addr); hood != "" {
		doc["neighborhood"] = hood
	}
}
