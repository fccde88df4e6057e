package finman

import "errors"

// Sentinel errors for the data core. Callers discriminate with errors.Is;
// every returned error wraps exactly one of these.
var (
	// ErrValidation reports malformed input: a bad email, a too-short
	// nickname, an empty name, or an unparseable amount.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateAccount reports a registration for an email whose derived
	// identifier is already present in the accounts store.
	ErrDuplicateAccount = errors.New("account already exists")

	// ErrDuplicateFolder reports a folder creation with a name already in use.
	ErrDuplicateFolder = errors.New("folder already exists")

	// ErrNotFound reports a missing account, folder or record.
	ErrNotFound = errors.New("not found")

	// ErrCredentialMismatch reports a login whose nickname does not match the
	// one stored for the account.
	ErrCredentialMismatch = errors.New("credential mismatch")

	// ErrIndexOutOfRange reports a record deletion with an index outside the
	// folder's current sequence.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrPersistence reports an I/O failure while writing a store document.
	// Read failures never surface: a missing or corrupt document loads as its
	// default instead (a deliberate availability trade-off, see the store).
	ErrPersistence = errors.New("persistence failure")
)
