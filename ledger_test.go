package finman

import (
	"errors"
	"testing"
)

func mustRecord(t *testing.T, name, amount string, typ RecordType) Record {
	t.Helper()
	r, err := NewRecord(name, amount, typ, "", "")
	if err != nil {
		t.Fatalf("NewRecord(%q, %q, %v) failed: %v", name, amount, typ, err)
	}
	return r
}

func TestLedger_CreateFolder(t *testing.T) {
	testCases := []struct {
		name       string
		folderName string
		wantErr    error
	}{
		{name: "valid name", folderName: "Groceries"},
		{name: "empty name", folderName: "", wantErr: ErrValidation},
		{name: "blank name", folderName: "   ", wantErr: ErrValidation},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			err := l.CreateFolder(tc.folderName)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("CreateFolder(%q) error = %v, want %v", tc.folderName, err, tc.wantErr)
			}
		})
	}

	t.Run("duplicate name", func(t *testing.T) {
		l := NewLedger()
		if err := l.CreateFolder("Groceries"); err != nil {
			t.Fatalf("first CreateFolder failed: %v", err)
		}
		if err := l.CreateFolder("Groceries"); !errors.Is(err, ErrDuplicateFolder) {
			t.Errorf("second CreateFolder error = %v, want ErrDuplicateFolder", err)
		}
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		l := NewLedger()
		if err := l.CreateFolder("Groceries"); err != nil {
			t.Fatalf("CreateFolder failed: %v", err)
		}
		if err := l.CreateFolder("groceries"); err != nil {
			t.Errorf("CreateFolder with different case failed: %v", err)
		}
	})
}

func TestLedger_AddRecord(t *testing.T) {
	t.Run("missing folder", func(t *testing.T) {
		l := NewLedger()
		_, err := l.AddRecord("Nope", mustRecord(t, "Salary", "1000", Income))
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("AddRecord on missing folder error = %v, want ErrNotFound", err)
		}
	})

	t.Run("unvalidated record is rejected", func(t *testing.T) {
		l := NewLedger()
		l.CreateFolder("Bills")
		_, err := l.AddRecord("Bills", Record{Name: "Rent"})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("AddRecord with zero Record error = %v, want ErrValidation", err)
		}
	})

	t.Run("assigns sequential ids and defaults", func(t *testing.T) {
		l := NewLedger()
		l.CreateFolder("Bills")

		first, err := l.AddRecord("Bills", mustRecord(t, "Rent", "400", Expense))
		if err != nil {
			t.Fatalf("AddRecord failed: %v", err)
		}
		second, err := l.AddRecord("Bills", mustRecord(t, "Salary", "1000", Income))
		if err != nil {
			t.Fatalf("AddRecord failed: %v", err)
		}

		if first.ID != 1 || second.ID != 2 {
			t.Errorf("ids = %d, %d, want 1, 2", first.ID, second.ID)
		}
		if first.Date == "" {
			t.Error("Date was not defaulted")
		}
		if first.Currency != DefaultCurrency {
			t.Errorf("Currency = %q, want %q", first.Currency, DefaultCurrency)
		}
	})

	t.Run("ids survive deletions", func(t *testing.T) {
		l := NewLedger()
		l.CreateFolder("Bills")
		l.AddRecord("Bills", mustRecord(t, "a", "1", Expense))
		l.AddRecord("Bills", mustRecord(t, "b", "2", Expense))
		if err := l.DeleteRecord("Bills", 1); err != nil {
			t.Fatalf("DeleteRecord failed: %v", err)
		}
		third, err := l.AddRecord("Bills", mustRecord(t, "c", "3", Expense))
		if err != nil {
			t.Fatalf("AddRecord failed: %v", err)
		}
		if third.ID != 3 {
			t.Errorf("id after delete = %d, want 3 (sequence must not rewind)", third.ID)
		}
	})
}

func TestLedger_DeleteRecord(t *testing.T) {
	newFolder := func(t *testing.T) *Ledger {
		l := NewLedger()
		l.CreateFolder("Bills")
		for _, name := range []string{"first", "second", "third"} {
			if _, err := l.AddRecord("Bills", mustRecord(t, name, "10", Expense)); err != nil {
				t.Fatalf("AddRecord(%q) failed: %v", name, err)
			}
		}
		return l
	}

	t.Run("deletion shifts later records down", func(t *testing.T) {
		l := newFolder(t)
		if err := l.DeleteRecord("Bills", 0); err != nil {
			t.Fatalf("DeleteRecord(0) failed: %v", err)
		}
		records, err := l.Records("Bills")
		if err != nil {
			t.Fatalf("Records failed: %v", err)
		}
		if len(records) != 2 || records[0].Name != "second" {
			t.Errorf("after delete records[0] = %q (len %d), want \"second\" (len 2)", records[0].Name, len(records))
		}

		// The previously valid index 2 is now out of range.
		if err := l.DeleteRecord("Bills", 2); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("DeleteRecord(2) on 2-record folder error = %v, want ErrIndexOutOfRange", err)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		l := newFolder(t)
		for _, index := range []int{-1, 3, 100} {
			if err := l.DeleteRecord("Bills", index); !errors.Is(err, ErrIndexOutOfRange) {
				t.Errorf("DeleteRecord(%d) error = %v, want ErrIndexOutOfRange", index, err)
			}
		}
	})

	t.Run("missing folder", func(t *testing.T) {
		l := newFolder(t)
		if err := l.DeleteRecord("Nope", 0); !errors.Is(err, ErrNotFound) {
			t.Errorf("DeleteRecord on missing folder error = %v, want ErrNotFound", err)
		}
	})

	t.Run("by id", func(t *testing.T) {
		l := newFolder(t)
		if err := l.DeleteRecordByID("Bills", 2); err != nil {
			t.Fatalf("DeleteRecordByID(2) failed: %v", err)
		}
		records, _ := l.Records("Bills")
		if len(records) != 2 || records[0].ID != 1 || records[1].ID != 3 {
			t.Errorf("remaining ids = %v, want [1 3]", []uint64{records[0].ID, records[1].ID})
		}
		if err := l.DeleteRecordByID("Bills", 2); !errors.Is(err, ErrNotFound) {
			t.Errorf("second DeleteRecordByID(2) error = %v, want ErrNotFound", err)
		}
	})
}

func TestLedger_Aggregate(t *testing.T) {
	t.Run("empty folder is all zeros", func(t *testing.T) {
		l := NewLedger()
		l.CreateFolder("Groceries")
		s, err := l.Aggregate("Groceries")
		if err != nil {
			t.Fatalf("Aggregate failed: %v", err)
		}
		if !s.TotalIncome.IsZero() || !s.TotalExpense.IsZero() || !s.Balance().IsZero() || s.RecordCount != 0 {
			t.Errorf("Aggregate on empty folder = %+v, want all zeros", s)
		}
	})

	t.Run("income and expense", func(t *testing.T) {
		l := NewLedger()
		l.CreateFolder("Home")
		l.AddRecord("Home", mustRecord(t, "Salary", "1000", Income))
		l.AddRecord("Home", mustRecord(t, "Rent", "400", Expense))

		s, err := l.Aggregate("Home")
		if err != nil {
			t.Fatalf("Aggregate failed: %v", err)
		}
		if !s.TotalIncome.Equal(A(1000)) {
			t.Errorf("TotalIncome = %v, want 1000", s.TotalIncome)
		}
		if !s.TotalExpense.Equal(A(400)) {
			t.Errorf("TotalExpense = %v, want 400", s.TotalExpense)
		}
		if !s.Balance().Equal(A(600)) {
			t.Errorf("Balance = %v, want 600", s.Balance())
		}
		if s.RecordCount != 2 {
			t.Errorf("RecordCount = %d, want 2", s.RecordCount)
		}
	})

	t.Run("missing folder", func(t *testing.T) {
		l := NewLedger()
		if _, err := l.Aggregate("Nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf("Aggregate on missing folder error = %v, want ErrNotFound", err)
		}
	})

	t.Run("legacy unparseable amount counts as zero", func(t *testing.T) {
		// Records with broken amounts can only come from an older, more
		// lenient document.
		l := NewLedger()
		l.restoreFolder("Legacy", []Record{
			restoredRecord(1, "Salary", "1000", Income, "$ USD", "01.01.2024 09:00"),
			restoredRecord(2, "Typo", "abc", Income, "$ USD", "02.01.2024 09:00"),
			restoredRecord(3, "Rent", "400", Expense, "$ USD", "03.01.2024 09:00"),
		})
		s, err := l.Aggregate("Legacy")
		if err != nil {
			t.Fatalf("Aggregate failed: %v", err)
		}
		if !s.TotalIncome.Equal(A(1000)) || !s.TotalExpense.Equal(A(400)) {
			t.Errorf("totals = %v/%v, want 1000/400 (broken record must contribute zero)", s.TotalIncome, s.TotalExpense)
		}
		if s.RecordCount != 3 {
			t.Errorf("RecordCount = %d, want 3 (broken record still counts)", s.RecordCount)
		}
	})

	t.Run("legacy signed amount sums signed", func(t *testing.T) {
		// Older documents stored negative amounts; only records whose amount
		// fails to parse contribute zero.
		l := NewLedger()
		l.restoreFolder("Legacy", []Record{
			restoredRecord(1, "Refund", "-5", Expense, "$ USD", "01.01.2024 09:00"),
			restoredRecord(2, "Rent", "400", Expense, "$ USD", "02.01.2024 09:00"),
		})
		s, err := l.Aggregate("Legacy")
		if err != nil {
			t.Fatalf("Aggregate failed: %v", err)
		}
		if !s.TotalExpense.Equal(A(395)) {
			t.Errorf("TotalExpense = %v, want 395 (signed amount must keep its sign)", s.TotalExpense)
		}
		if s.RecordCount != 2 {
			t.Errorf("RecordCount = %d, want 2", s.RecordCount)
		}
	})

	t.Run("aggregate all folders", func(t *testing.T) {
		l := NewLedger()
		l.CreateFolder("A")
		l.CreateFolder("B")
		l.AddRecord("A", mustRecord(t, "Salary", "1000", Income))
		l.AddRecord("B", mustRecord(t, "Rent", "400", Expense))
		l.AddRecord("B", mustRecord(t, "Bonus", "50.50", Income))

		s := l.AggregateAll()
		if !s.TotalIncome.Equal(A(1050.50)) {
			t.Errorf("TotalIncome = %v, want 1050.50", s.TotalIncome)
		}
		if !s.TotalExpense.Equal(A(400)) {
			t.Errorf("TotalExpense = %v, want 400", s.TotalExpense)
		}
		if s.RecordCount != 3 {
			t.Errorf("RecordCount = %d, want 3", s.RecordCount)
		}
	})
}

func TestLedger_Folders(t *testing.T) {
	l := NewLedger()
	for _, name := range []string{"zoo", "Alpha", "mid"} {
		if err := l.CreateFolder(name); err != nil {
			t.Fatalf("CreateFolder(%q) failed: %v", name, err)
		}
	}
	var got []string
	for name := range l.Folders() {
		got = append(got, name)
	}
	want := []string{"Alpha", "mid", "zoo"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Folders() = %v, want %v", got, want)
		}
	}
}
