package sheets

import (
	"context"
	"sort"
	"sync"
)

// fakeTransport is an in-memory Transport for tests. It mimics the real
// backing store's semantics: whole-range reads, whole-range overwrites,
// ErrSheetMissing for tabs that do not exist.
type fakeTransport struct {
	mu     sync.Mutex
	sheets map[string][][]string
	writes int
}

func newFakeTransport(seed map[string][][]string) *fakeTransport {
	sheets := make(map[string][][]string, len(seed))
	for name, rows := range seed {
		sheets[name] = copyRows(rows)
	}
	return &fakeTransport{sheets: sheets}
}

func (f *fakeTransport) ReadRange(ctx context.Context, sheet string) ([][]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows, ok := f.sheets[sheet]
	if !ok {
		return nil, ErrSheetMissing
	}
	return copyRows(rows), nil
}

func (f *fakeTransport) WriteRange(ctx context.Context, sheet string, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sheets[sheet] = copyRows(rows)
	f.writes++
	return nil
}

func (f *fakeTransport) SheetTitles(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	titles := make([]string, 0, len(f.sheets))
	for name := range f.sheets {
		titles = append(titles, name)
	}
	sort.Strings(titles)
	return titles, nil
}

func (f *fakeTransport) AddSheet(ctx context.Context, title string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sheets[title]; !ok {
		f.sheets[title] = [][]string{}
	}
	return nil
}

func (f *fakeTransport) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func (f *fakeTransport) rows(sheet string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyRows(f.sheets[sheet])
}

func copyRows(rows [][]string) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}
