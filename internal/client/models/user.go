// Package models defines the records exchanged with the events resource
// store: users, events, and categories.
package models

import "strings"

// User is an identity record as stored by the backend. Password is only ever
// present when freshly submitted; the backing store holds it in plaintext and
// this client compares it in plaintext (the store has no server-side auth).
//
// Older records carry a single combined Name field instead of
// FirstName/LastName; see NormalizeName.
type User struct {
	ID        string `json:"id,omitempty"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Name      string `json:"name,omitempty"` // legacy combined form, kept for display
	Role      string `json:"role,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Credentials is a login request.
type Credentials struct {
	Email    string
	Password string
}

// RegisterData is a registration request. Confirm-password equality is
// validated by the caller, not by the auth workflow.
type RegisterData struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// NormalizeName migrates a legacy combined Name into FirstName/LastName:
// FirstName gets the first whitespace-delimited token, LastName the remainder
// joined by single spaces. Each field is only filled when blank and Name is
// preserved, so re-applying is a no-op.
func (u *User) NormalizeName() {
	if u.Name == "" {
		return
	}
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return
	}
	if u.FirstName == "" {
		u.FirstName = fields[0]
	}
	if u.LastName == "" && len(fields) > 1 {
		u.LastName = strings.Join(fields[1:], " ")
	}
}

// DisplayName returns the best human-readable name available.
func (u *User) DisplayName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.Name != "":
		return u.Name
	default:
		return u.Email
	}
}
