// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package auth

import (
	"net/http"
)

// Errors returned on requests that fail verification.
const (
	ErrSignatureMissing badRequestError   = "no signature header"
	ErrSignatureInvalid unauthorizedError = "invalid signature"
)

// AuthError adds a behavioural hint to an Error.
type AuthError interface {
	error

	// SuggestedResponseCode gives a HTTP status code.
	SuggestedResponseCode() int
}

// badRequestError is returned on formal errors,
// such as when the signature cannot be found.
type badRequestError string

// Error implements the error interface.
func (e badRequestError) Error() string { return string(e) }

// SuggestedResponseCode implements the AuthError interface.
func (e badRequestError) SuggestedResponseCode() int { return http.StatusBadRequest }

// unauthorizedError is given when the signature does not match the request.
//
// The client should try again using different credentials.
type unauthorizedError string

// Error implements the error interface.
func (e unauthorizedError) Error() string { return string(e) }

// SuggestedResponseCode implements the AuthError interface.
func (e unauthorizedError) SuggestedResponseCode() int { return http.StatusUnauthorized }

// ConfigurationError is returned when a Verifier or Signer cannot be constructed.
//
// It never occurs while serving requests.
type ConfigurationError string

// Error implements the error interface.
func (e ConfigurationError) Error() string { return string(e) }

// Outcome is the result of verifying a single request.
type Outcome uint8

// Outcomes, see OutcomeOf.
const (
	Pass Outcome = iota
	MissingHeader
	Mismatch
)

var outcomeNames = [...]string{
	Pass:          "pass",
	MissingHeader: "missing header",
	Mismatch:      "mismatch",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// OutcomeOf translates what Authenticate returned into an Outcome.
func OutcomeOf(err error) Outcome {
	switch err {
	case nil:
		return Pass
	case ErrSignatureMissing:
		return MissingHeader
	}
	return Mismatch
}
