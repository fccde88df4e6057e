// Package renderer formats ledger data as markdown for terminal display.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/finman"
)

// Records renders a folder's record sequence as a markdown table, in
// insertion order.
func Records(folder string, records []finman.Record) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# 📁 %s\n\n", folder)
	if len(records) == 0 {
		b.WriteString("No records yet.\n")
		return b.String()
	}
	b.WriteString("| ID | Date | Name | Type | Amount |\n")
	b.WriteString("|---:|:---|:---|:---|---:|\n")
	for _, r := range records {
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s |\n",
			r.ID, r.Date, r.Name, r.Type, amountCell(r))
	}
	return b.String()
}

// amountCell renders the signed amount for one record. A legacy record whose
// amount does not parse shows its raw stored text.
func amountCell(r finman.Record) string {
	amount, ok := r.Amount()
	if !ok {
		return r.AmountString()
	}
	return amount.SignedDisplay(r.Currency, r.Type)
}

// Summary renders aggregation totals under a title.
//
// Totals are formatted in the dollar style whatever currencies the records
// carry; folders mixing currencies sum numerically across them.
func Summary(title string, s finman.Summary) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "# 📊 %s\n\n", title)
	fmt.Fprintf(b, "**Balance: %s**\n\n", s.Balance().Display(finman.DefaultCurrency))
	b.WriteString("| Income | Expense | Records |\n")
	b.WriteString("|---:|---:|---:|\n")
	fmt.Fprintf(b, "| %s | %s | %d |\n",
		s.TotalIncome.SignedDisplay(finman.DefaultCurrency, finman.Income),
		s.TotalExpense.SignedDisplay(finman.DefaultCurrency, finman.Expense),
		s.RecordCount)
	return b.String()
}

// Folders renders the folder list with each folder's balance and record
// count.
func Folders(ledger *finman.Ledger) string {
	b := &strings.Builder{}
	b.WriteString("# 📁 Your Folders\n\n")
	if ledger.FolderCount() == 0 {
		b.WriteString("No folders yet.\n")
		return b.String()
	}
	b.WriteString("| Folder | Balance | Records |\n")
	b.WriteString("|:---|---:|---:|\n")
	for name := range ledger.Folders() {
		s, err := ledger.Aggregate(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(b, "| %s | %s | %d |\n", name, balanceCell(s), s.RecordCount)
	}
	return b.String()
}

func balanceCell(s finman.Summary) string {
	balance := s.Balance()
	if balance.IsZero() {
		return "-"
	}
	if balance.IsNegative() {
		return balance.Display(finman.DefaultCurrency)
	}
	return "+" + balance.Display(finman.DefaultCurrency)
}
