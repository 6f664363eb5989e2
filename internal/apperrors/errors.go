package apperrors

import "errors"

// ErrNotFound indicates that a requested account could not be found.
var ErrNotFound = errors.New("account not found")

// ErrDuplicate indicates that an account number is already in use.
var ErrDuplicate = errors.New("account number already in use")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrMalformedInput indicates that an identity, SSN or PIN token fails its
// shape validation (non-numeric, wrong length).
var ErrMalformedInput = errors.New("malformed input")

// ErrInvalidAmount indicates that a requested monetary amount is zero or
// negative, or fails a channel-specific shape constraint.
var ErrInvalidAmount = errors.New("amount must be positive")

// ErrInsufficientFunds indicates that a requested debit exceeds the current
// balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInvalidPIN indicates that a supplied credential does not match the
// stored one.
var ErrInvalidPIN = errors.New("invalid PIN")

// ErrRegistryFull indicates that the bank has no free slot for a new account.
var ErrRegistryFull = errors.New("no more accounts available")
