package rowcodec

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/kidorama/sheetstore/internal/schema"
	"github.com/kidorama/sheetstore/pkg/types"
)

// EncodeTable flattens documents into a header+rows matrix that fully
// replaces the target range.
//
// The header row starts from layout when non-empty (preserving whatever
// column arrangement the spreadsheet editors built up), otherwise from the
// entity's canonical field list. Document keys the header does not cover
// yet are appended next, then canonical schema fields that are still
// missing — so columns seen before and columns the schema declares both
// survive a write whose payload lacks them. Each name is appended once.
func EncodeTable(entity types.EntityType, docs []types.Document, layout []string) [][]string {
	var headers []string
	if len(layout) > 0 {
		headers = append(headers, layout...)
	} else {
		headers = append(headers, schema.Fields(entity)...)
	}

	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[h] = true
	}

	var extra []string
	for _, doc := range docs {
		for key := range doc {
			if !present[key] {
				present[key] = true
				extra = append(extra, key)
			}
		}
	}
	// Map iteration is unordered; sort so repeated encodes of the same
	// documents produce the same header row.
	sort.Strings(extra)
	headers = append(headers, extra...)

	for _, field := range schema.Fields(entity) {
		if !present[field] {
			present[field] = true
			headers = append(headers, field)
		}
	}

	rows := make([][]string, 0, len(docs)+1)
	rows = append(rows, headers)
	for _, doc := range docs {
		row := make([]string, len(headers))
		for i, h := range headers {
			row[i] = encodeCell(doc[h])
		}
		rows = append(rows, row)
	}
	return rows
}

// encodeCell serializes one document value into cell text. Composite
// values become JSON; everything else becomes its plain string form.
func encodeCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}
