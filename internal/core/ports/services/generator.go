package services

// CredentialGenerator produces identifiers and credentials for newly opened
// accounts. It is injected so account construction is deterministic under a
// fixed generator in tests.
type CredentialGenerator interface {
	// AccountNumber returns a uniformly random 8-digit account number.
	AccountNumber() int64

	// PIN returns a uniformly random 4-digit PIN string, zero-padded.
	PIN() string
}
