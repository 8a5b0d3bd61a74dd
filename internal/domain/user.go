package domain

import (
	"net/mail"
	"strings"
	"time"
)

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsStaff      bool
	CreatedAt    time.Time
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	UserID  int64
	Email   string
	IsStaff bool
}

func (i Identity) Authenticated() bool {
	return i.UserID > 0
}

const MinPasswordLength = 5

func ValidateRegistration(username, email, password string) error {
	v := &ValidationError{}
	if strings.TrimSpace(username) == "" {
		v.Add("username", "This field may not be blank.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		v.Add("email", "Enter a valid email address.")
	}
	if len(password) < MinPasswordLength {
		v.Add("password", "Ensure this field has at least 5 characters.")
	}
	return v.OrNil()
}
