package finman

import (
	"encoding/json"
	"fmt"
)

// This file defines the persisted JSON shape of records, folders, ledgers and
// accounts. The field order on write is fixed (jsonObjectWriter), and the
// decoders accept documents written by earlier, more lenient versions of the
// store: records without ids, unparseable amounts, unknown type strings.

// MarshalJSON encodes the record with its persisted amount string, keeping
// round-trip fidelity even for a legacy amount that does not parse.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", r.ID)
	w.Append("name", r.Name)
	w.Append("amount", r.amount)
	w.Append("type", r.Type.String())
	w.Append("currency", r.Currency)
	w.Append("date", r.Date)
	return w.MarshalJSON()
}

// recordDoc is the wire shape of a record.
type recordDoc struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
	Date     string `json:"date"`
}

func (r *Record) UnmarshalJSON(b []byte) error {
	var doc recordDoc
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("could not decode record: %w", err)
	}
	// Anything that is not exactly "income" is an expense, so documents with
	// unknown type strings still decode.
	t := Expense
	if doc.Type == Income.String() {
		t = Income
	}
	*r = restoredRecord(doc.ID, doc.Name, doc.Amount, t, doc.Currency, doc.Date)
	return nil
}

func (f *Folder) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	records := f.records
	if records == nil {
		records = []Record{}
	}
	w.Append("records", records)
	return w.MarshalJSON()
}

// folderDoc is the wire shape of a folder.
type folderDoc struct {
	Records []Record `json:"records"`
}

func (l *Ledger) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("folders", l.folders)
	return w.MarshalJSON()
}

func (l *Ledger) UnmarshalJSON(b []byte) error {
	var doc struct {
		Folders map[string]folderDoc `json:"folders"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("could not decode ledger: %w", err)
	}
	*l = *NewLedger()
	for name, f := range doc.Folders {
		l.restoreFolder(name, f.Records)
	}
	return nil
}

func (a *Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("email", a.Email)
	w.Append("nickname", a.Nickname)
	w.Append("created_at", a.CreatedAt)
	ledger := a.Ledger
	if ledger == nil {
		ledger = NewLedger()
	}
	w.Append("data", ledger)
	return w.MarshalJSON()
}

func (a *Account) UnmarshalJSON(b []byte) error {
	var doc struct {
		Email     string  `json:"email"`
		Nickname  string  `json:"nickname"`
		CreatedAt string  `json:"created_at"`
		Data      *Ledger `json:"data"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("could not decode account: %w", err)
	}
	if doc.Data == nil {
		doc.Data = NewLedger()
	}
	// The identifier is the document key, restored by the registry decoder.
	*a = Account{
		Email:     doc.Email,
		Nickname:  doc.Nickname,
		CreatedAt: doc.CreatedAt,
		Ledger:    doc.Data,
	}
	return nil
}

func (r *Registry) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.accounts)
}

func (r *Registry) UnmarshalJSON(b []byte) error {
	accounts := make(map[string]*Account)
	if err := json.Unmarshal(b, &accounts); err != nil {
		return fmt.Errorf("could not decode accounts: %w", err)
	}
	for id, a := range accounts {
		a.ID = id
	}
	r.accounts = accounts
	return nil
}
