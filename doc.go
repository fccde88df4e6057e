// Package finman provides the data and state core of a local-first personal
// finance tracker. It is designed to keep every byte of user data in plain,
// human-readable JSON files on local storage, with no network service and no
// multi-device synchronization.
//
// The core functionalities include:
//   - Account Registry: Registering and authenticating users by an
//     email/nickname pair, with a deterministic identifier derived from the
//     email address.
//   - Ledger Management: Organizing income and expense records into named
//     folders, with append and delete operations and per-folder or global
//     balance aggregation.
//   - Settings: Installation-wide theme and language preferences.
//   - Data Persistence: Whole-document JSON stores that are rewritten
//     atomically on every mutation and fall back to sane defaults when a
//     backing file is absent.
//
// This package serves as the foundational logic for the `finman` command-line
// tool, which acts as the presentation shell over this data layer.
package finman
