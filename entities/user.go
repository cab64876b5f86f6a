package entities

import (
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"
)

// User is an account that can own courses. The Password column always holds
// a bcrypt hash; the raw value never reaches the repository layer.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FirstName    string    `gorm:"not null" json:"firstName"`
	LastName     string    `gorm:"not null" json:"lastName"`
	EmailAddress string    `gorm:"uniqueIndex;not null" json:"emailAddress"`
	Password     string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// NewUser carries the fields a signup request may set. Password is the
// plaintext candidate and is validated and hashed before a User row is built.
type NewUser struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	Password     string `json:"password"`
}

// Validate checks every field rule and returns one message per violation.
func (n *NewUser) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(n.FirstName) == "" {
		errs = append(errs, "First Name value is required")
	}
	if strings.TrimSpace(n.LastName) == "" {
		errs = append(errs, "Last Name value is required")
	}
	if strings.TrimSpace(n.EmailAddress) == "" {
		errs = append(errs, "Email Address value is required")
	} else if !validEmail(n.EmailAddress) {
		errs = append(errs, "Email Address format is invalid")
	}
	if n.Password == "" {
		errs = append(errs, "Password value is required")
	} else if runes := utf8.RuneCountInString(n.Password); runes < 7 || runes > 50 {
		errs = append(errs, "Password must be 7 - 50 characters long")
	}

	return errs
}

// NormalizeEmail lower-cases and trims an email address. Signup and login
// both normalize, so matching is case-insensitive regardless of the database
// collation.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	addr, err := mail.ParseAddress(trimmed)
	return err == nil && addr.Address == trimmed
}
