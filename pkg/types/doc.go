// Package types defines the Store, Collection, and TranslationStore
// interfaces, the Document record type, backend configuration, and the
// standard errors shared by every sheetstore backend.
package types
