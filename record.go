package finman

import (
	"fmt"
	"strings"
	"time"
)

// RecordType tells whether a record adds to or subtracts from the balance.
type RecordType int

const (
	// Income adds to the balance.
	Income RecordType = iota
	// Expense subtracts from the balance.
	Expense
)

func (t RecordType) String() string {
	switch t {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseRecordType parses a string into a RecordType.
func ParseRecordType(s string) (RecordType, error) {
	switch s {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown record type %q: %w", s, ErrValidation)
	}
}

// RecordTimeFormat is the display timestamp format carried by every record.
const RecordTimeFormat = "02.01.2006 15:04"

// Now returns the current local time in the record timestamp format.
func Now() string { return time.Now().Format(RecordTimeFormat) }

// Record is one income or expense entry in a folder.
//
// The amount keeps its persisted string form alongside the parsed decimal:
// documents written by older versions may carry amounts that do not parse,
// and those records must keep displaying (and summing as zero) rather than
// poison the whole document.
type Record struct {
	// ID is a per-folder stable identifier, issued from a monotonically
	// increasing sequence when the record is appended. It never changes and
	// is never reused, so it stays valid across deletions of other records.
	ID uint64

	Name     string
	Type     RecordType
	Currency string // one of Currencies
	Date     string // RecordTimeFormat

	amount string // persisted form
	value  Amount
	valid  bool
}

// NewRecord builds a record from user input, parsing the amount once.
// Date defaults to the current local time when empty, currency to
// DefaultCurrency when empty. The ID is assigned later, on append.
func NewRecord(name, amount string, t RecordType, currencyLabel, date string) (Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, fmt.Errorf("empty record name: %w", ErrValidation)
	}
	value, err := ParseAmount(amount)
	if err != nil {
		return Record{}, err
	}
	if currencyLabel == "" {
		currencyLabel = DefaultCurrency
	}
	if date == "" {
		date = Now()
	}
	return Record{
		Name:     name,
		Type:     t,
		Currency: currencyLabel,
		Date:     date,
		amount:   value.String(),
		value:    value,
		valid:    true,
	}, nil
}

// Amount returns the parsed amount. ok is false for a legacy record whose
// persisted amount does not parse; such a record contributes zero to every
// aggregate.
func (r Record) Amount() (a Amount, ok bool) { return r.value, r.valid }

// AmountString returns the amount exactly as persisted, parseable or not.
func (r Record) AmountString() string { return r.amount }

// restoredRecord rebuilds a record from its persisted fields, tolerating an
// unparseable amount. Signed amounts keep their sign.
func restoredRecord(id uint64, name, amount string, t RecordType, currencyLabel, date string) Record {
	r := Record{
		ID:       id,
		Name:     name,
		Type:     t,
		Currency: currencyLabel,
		Date:     date,
		amount:   amount,
	}
	if value, err := parseSignedAmount(amount); err == nil {
		r.value = value
		r.valid = true
	}
	return r
}
