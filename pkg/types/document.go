package types

// Document is a decoded record keyed by canonical field names. Values are
// strings, float64 numbers, bools, []string lists, nested map[string]any
// objects, or nil, depending on what the row codec reconstructed from the
// sheet cells.
type Document map[string]any

// ID returns the document's id field, or "" when the id is absent or not a
// string. A document without an id is not a valid persisted record.
func (d Document) ID() string {
	id, _ := d["id"].(string)
	return id
}

// Clone returns a shallow copy of the document. Nested values are shared.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Merge returns a new document with patch keys laid over d. Patch keys win;
// keys absent from the patch are retained. Neither input is modified.
func (d Document) Merge(patch Document) Document {
	out := d.Clone()
	for k, v := range patch {
		out[k] = v
	}
	return out
}
