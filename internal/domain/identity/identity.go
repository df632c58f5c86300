package identity

import (
	"strings"

	"github.com/gatherly/rsvp-backend-go/internal/pkg/validator"
)

// Respondent is the tagged union of the two key-spaces a response can
// arrive from: an authenticated account (external id + verified email)
// or a self-declared guest. Exactly one of Account/Guest is set.
type Respondent struct {
	Account *Account
	Guest   *Guest
}

// Account is an authenticated principal as issued by the external
// identity provider. Its email is already verified.
type Account struct {
	UserID string
	Email  string
	Name   string
}

// Guest is a self-declared, unverified respondent.
type Guest struct {
	Email string
	Name  string
}

// Resolved is the single canonical identity fed to the ledger.
// Both key-spaces collapse to the canonical email, so a guest who later
// signs in with the same address merges into one respondent.
type Resolved struct {
	Email         string
	DisplayName   string
	Authenticated bool
}

// Canonicalize trims surrounding whitespace and lower-cases the whole
// address. Two addresses differing only in case or whitespace resolve
// to the same ledger key.
func Canonicalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Resolve maps a respondent to its canonical identity. Guest emails are
// validated against standard address syntax; authenticated emails are
// trusted as verified by the identity provider.
func Resolve(r Respondent) (Resolved, error) {
	if r.Account != nil {
		return Resolved{
			Email:         Canonicalize(r.Account.Email),
			DisplayName:   strings.TrimSpace(r.Account.Name),
			Authenticated: true,
		}, nil
	}

	if r.Guest == nil {
		return Resolved{}, validator.ValidationErrors{{
			Field:   "email",
			Message: "email is required",
		}}
	}

	email := Canonicalize(r.Guest.Email)
	if email == "" {
		return Resolved{}, validator.ValidationErrors{{
			Field:   "email",
			Message: "email is required",
		}}
	}
	if !validator.IsValidEmail(email) {
		return Resolved{}, validator.ValidationErrors{{
			Field:   "email",
			Message: "email format is invalid",
		}}
	}

	return Resolved{
		Email:         email,
		DisplayName:   strings.TrimSpace(r.Guest.Name),
		Authenticated: false,
	}, nil
}
