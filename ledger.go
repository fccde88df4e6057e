package finman

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// Folder is a named, ordered collection of records. Records keep their
// insertion order; deleting one shifts the positions of those after it.
type Folder struct {
	records []Record
	seq     uint64 // last issued record ID
}

// Ledger is one user's complete financial dataset: a mapping of folder name
// to its ordered records. Folder names are case-sensitive and unique.
//
// A Ledger is not safe for concurrent use; exactly one session mutates it at
// a time and every mutation is followed by a whole-document save.
type Ledger struct {
	folders map[string]*Folder
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{folders: make(map[string]*Folder)}
}

// CreateFolder inserts a new empty folder.
func (l *Ledger) CreateFolder(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("empty folder name: %w", ErrValidation)
	}
	if _, ok := l.folders[name]; ok {
		return fmt.Errorf("folder %q: %w", name, ErrDuplicateFolder)
	}
	l.folders[name] = &Folder{}
	return nil
}

// HasFolder reports whether a folder with this exact name exists.
func (l *Ledger) HasFolder(name string) bool {
	_, ok := l.folders[name]
	return ok
}

// Folders iterates over folder names in lexical order.
func (l *Ledger) Folders() iter.Seq[string] {
	return func(yield func(string) bool) {
		names := slices.Collect(maps.Keys(l.folders))
		slices.Sort(names)
		for _, name := range names {
			if !yield(name) {
				return
			}
		}
	}
}

// FolderCount returns the number of folders.
func (l *Ledger) FolderCount() int { return len(l.folders) }

// Records returns a copy of the folder's record sequence in insertion order.
func (l *Ledger) Records(folder string) ([]Record, error) {
	f, ok := l.folders[folder]
	if !ok {
		return nil, fmt.Errorf("folder %q: %w", folder, ErrNotFound)
	}
	return slices.Clone(f.records), nil
}

// AddRecord appends a record to the end of a folder's sequence, assigning it
// the folder's next stable ID. It returns the stored record.
//
// The record must come from NewRecord (or a decoded document); a zero Record
// is rejected as unvalidated input.
func (l *Ledger) AddRecord(folder string, r Record) (Record, error) {
	f, ok := l.folders[folder]
	if !ok {
		return Record{}, fmt.Errorf("folder %q: %w", folder, ErrNotFound)
	}
	if strings.TrimSpace(r.Name) == "" {
		return Record{}, fmt.Errorf("empty record name: %w", ErrValidation)
	}
	if !r.valid {
		return Record{}, fmt.Errorf("invalid amount %q: %w", r.amount, ErrValidation)
	}
	if r.Type != Income && r.Type != Expense {
		return Record{}, fmt.Errorf("unknown record type: %w", ErrValidation)
	}
	if r.Date == "" {
		r.Date = Now()
	}
	f.seq++
	r.ID = f.seq
	f.records = append(f.records, r)
	return r, nil
}

// DeleteRecord removes the record at the given position in a folder's
// sequence. Records after it shift down by one; callers must not reuse
// positions computed before the deletion.
func (l *Ledger) DeleteRecord(folder string, index int) error {
	f, ok := l.folders[folder]
	if !ok {
		return fmt.Errorf("folder %q: %w", folder, ErrNotFound)
	}
	if index < 0 || index >= len(f.records) {
		return fmt.Errorf("record %d of %d in folder %q: %w", index, len(f.records), folder, ErrIndexOutOfRange)
	}
	f.records = slices.Delete(f.records, index, index+1)
	return nil
}

// DeleteRecordByID removes the record carrying the given stable ID. Unlike
// positional deletion, IDs stay valid across other deletions.
func (l *Ledger) DeleteRecordByID(folder string, id uint64) error {
	f, ok := l.folders[folder]
	if !ok {
		return fmt.Errorf("folder %q: %w", folder, ErrNotFound)
	}
	for i, r := range f.records {
		if r.ID == id {
			f.records = slices.Delete(f.records, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("record #%d in folder %q: %w", id, folder, ErrNotFound)
}

// Summary holds the computed totals over a folder or a whole ledger.
type Summary struct {
	TotalIncome  Amount
	TotalExpense Amount
	RecordCount  int
}

// Balance returns income minus expense. It may be negative.
func (s Summary) Balance() Amount { return s.TotalIncome.Sub(s.TotalExpense) }

// add folds one record into the summary. A record whose persisted amount does
// not parse contributes zero to both totals but still counts; documents
// written by older versions rely on this.
func (s *Summary) add(r Record) {
	s.RecordCount++
	amount, ok := r.Amount()
	if !ok {
		return
	}
	switch r.Type {
	case Income:
		s.TotalIncome = s.TotalIncome.Add(amount)
	case Expense:
		s.TotalExpense = s.TotalExpense.Add(amount)
	}
}

// Aggregate computes the totals over a single folder.
func (l *Ledger) Aggregate(folder string) (Summary, error) {
	f, ok := l.folders[folder]
	if !ok {
		return Summary{}, fmt.Errorf("folder %q: %w", folder, ErrNotFound)
	}
	var s Summary
	for _, r := range f.records {
		s.add(r)
	}
	return s, nil
}

// AggregateAll computes the totals over every folder of the ledger.
func (l *Ledger) AggregateAll() Summary {
	var s Summary
	for _, f := range l.folders {
		for _, r := range f.records {
			s.add(r)
		}
	}
	return s
}

// BackfillIDs assigns fresh stable IDs to records that have none. Such
// records only come from documents written before IDs existed. It returns
// the number of records updated.
func (l *Ledger) BackfillIDs() int {
	var n int
	for _, f := range l.folders {
		for i := range f.records {
			if f.records[i].ID == 0 {
				f.seq++
				f.records[i].ID = f.seq
				n++
			}
		}
	}
	return n
}

// restoreFolder rebuilds a folder from persisted records, resuming the ID
// sequence after the highest ID seen so legacy zero-ID records never clash
// with future ones.
func (l *Ledger) restoreFolder(name string, records []Record) {
	f := &Folder{records: records}
	for _, r := range records {
		if r.ID > f.seq {
			f.seq = r.ID
		}
	}
	l.folders[name] = f
}
