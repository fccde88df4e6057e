package finman

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"iter"
	"maps"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// Account is one registered user: profile, credential and embedded ledger.
// Accounts are never deleted; the nickname acts as the login credential.
type Account struct {
	ID        string // derived from the email, see DeriveID
	Email     string
	Nickname  string
	CreatedAt string // RFC 3339
	Ledger    *Ledger
}

// DeriveID maps an email address to the account identifier: the hex MD5 of
// the trimmed email. The mapping is case-sensitive and deterministic, and it
// is a content key, not a security measure: anyone knowing the email can
// derive it.
func DeriveID(email string) string {
	sum := md5.Sum([]byte(strings.TrimSpace(email)))
	return hex.EncodeToString(sum[:])
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// MinNicknameLen is the minimum nickname length, in runes.
const MinNicknameLen = 2

// Registry is the account store: a mapping of derived identifier to account,
// loaded from and saved to a single JSON document.
type Registry struct {
	accounts map[string]*Account
	dir      string // data directory, empty for an in-memory registry
}

// NewRegistry creates an empty in-memory registry. Saves are no-ops until a
// data directory is attached with OpenRegistry.
func NewRegistry() *Registry {
	return &Registry{accounts: make(map[string]*Account)}
}

// Register creates a new account for an email/nickname pair and persists it.
func (r *Registry) Register(email, nickname string) (*Account, error) {
	email = strings.TrimSpace(email)
	nickname = strings.TrimSpace(nickname)
	if email == "" || nickname == "" {
		return nil, fmt.Errorf("email and nickname are required: %w", ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("invalid email %q: %w", email, ErrValidation)
	}
	if utf8.RuneCountInString(nickname) < MinNicknameLen {
		return nil, fmt.Errorf("nickname must be at least %d characters: %w", MinNicknameLen, ErrValidation)
	}

	id := DeriveID(email)
	if _, ok := r.accounts[id]; ok {
		return nil, fmt.Errorf("email %q: %w", email, ErrDuplicateAccount)
	}

	account := &Account{
		ID:        id,
		Email:     email,
		Nickname:  nickname,
		CreatedAt: time.Now().Format(time.RFC3339),
		Ledger:    NewLedger(),
	}
	r.accounts[id] = account
	if err := r.Save(); err != nil {
		return nil, err
	}
	return account, nil
}

// Login authenticates an email/nickname pair and returns the account with its
// ledger.
func (r *Registry) Login(email, nickname string) (*Account, error) {
	email = strings.TrimSpace(email)
	nickname = strings.TrimSpace(nickname)
	if email == "" || nickname == "" {
		return nil, fmt.Errorf("email and nickname are required: %w", ErrValidation)
	}

	account, ok := r.accounts[DeriveID(email)]
	if !ok {
		return nil, fmt.Errorf("no account for %q: %w", email, ErrNotFound)
	}
	if account.Nickname != nickname {
		return nil, fmt.Errorf("nickname does not match for %q: %w", email, ErrCredentialMismatch)
	}
	return account, nil
}

// Account returns the account with the given identifier, or nil.
func (r *Registry) Account(id string) *Account { return r.accounts[id] }

// Len returns the number of registered accounts.
func (r *Registry) Len() int { return len(r.accounts) }

// Accounts iterates over all accounts, ordered by identifier for stable
// output.
func (r *Registry) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		ids := slices.Collect(maps.Keys(r.accounts))
		slices.Sort(ids)
		for _, id := range ids {
			if !yield(r.accounts[id]) {
				return
			}
		}
	}
}

// Save rewrites the whole accounts document. Every mutation of any account's
// ledger is followed by a Save; there is no partial or incremental write.
func (r *Registry) Save() error {
	if r.dir == "" {
		return nil
	}
	return saveAccounts(r.dir, r)
}
