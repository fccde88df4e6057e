package finman

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value. The sign of a cash flow is carried by the
// record type (income or expense); new input is constrained to non-negative
// magnitudes, but documents written by older versions may carry signed
// amounts, which keep their sign and sum signed.
//
// Amounts are parsed exactly once at the input boundary and kept as exact
// decimals from there on.
type Amount struct {
	value decimal.Decimal
}

// ParseAmount parses the string representation of an amount entered by the
// user. It fails on anything that is not a plain decimal number, and on
// negative values.
func ParseAmount(s string) (Amount, error) {
	a, err := parseSignedAmount(s)
	if err != nil {
		return Amount{}, err
	}
	if a.IsNegative() {
		return Amount{}, fmt.Errorf("negative amount %q: %w", s, ErrValidation)
	}
	return a, nil
}

// parseSignedAmount parses any plain decimal number, negative included. It is
// the restore path for persisted amounts, which older documents stored signed.
func parseSignedAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, fmt.Errorf("empty amount: %w", ErrValidation)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, ErrValidation)
	}
	return Amount{value: d}, nil
}

// A builds an Amount from a number. Intended for tests and aggregation seeds.
func A[T float32 | float64 | int | int32 | int64](value T) Amount {
	return Amount{value: decimal.NewFromFloat(float64(value))}
}

func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Equal(b Amount) bool { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool        { return a.value.IsZero() }
func (a Amount) IsNegative() bool    { return a.value.IsNegative() }

// String returns the plain decimal form, the one persisted to disk.
func (a Amount) String() string { return a.value.String() }

// currency returns the go-money metadata for an ISO code, never nil.
func currency(code string) *money.Currency {
	return money.New(0, code).Currency()
}

// Display formats the amount with the symbol and decimal places of the given
// currency label, e.g. "$1,234.50" for "$ USD". An amount whose minor-unit
// value does not fit an int64 falls back to the plain decimal form.
func (a Amount) Display(label string) string {
	cur := currency(CurrencyCode(label))
	shifted := a.value.Shift(int32(cur.Fraction)).Round(0)
	if !shifted.BigInt().IsInt64() {
		return a.value.String()
	}
	return cur.Formatter().Format(shifted.IntPart())
}

// SignedDisplay renders the amount like Display, prefixed with the sign of the
// given record type. A zero amount renders as "-". A negative amount carries
// its own minus sign and takes no type prefix.
func (a Amount) SignedDisplay(label string, t RecordType) string {
	if a.IsZero() {
		return "-"
	}
	if a.IsNegative() {
		return a.Display(label)
	}
	if t == Income {
		return "+" + a.Display(label)
	}
	return "-" + a.Display(label)
}

// Currencies is the fixed set of labeled currencies offered by the tracker,
// in menu order.
var Currencies = []string{
	"$ USD", "€ EUR", "£ GBP", "₽ RUB", "¥ JPY", "₩ KRW", "₹ INR",
}

// DefaultCurrency is the label selected when a record specifies none.
const DefaultCurrency = "$ USD"

// KnownCurrency reports whether label is one of the fixed currency labels.
func KnownCurrency(label string) bool {
	for _, c := range Currencies {
		if c == label {
			return true
		}
	}
	return false
}

// CurrencyCode extracts the ISO code from a currency label ("€ EUR" → "EUR").
// An unrecognizable label falls back to USD so that display never fails.
func CurrencyCode(label string) string {
	fields := strings.Fields(label)
	if len(fields) == 0 {
		return "USD"
	}
	code := fields[len(fields)-1]
	if money.GetCurrency(code) == nil {
		return "USD"
	}
	return code
}
