package client

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidPhone    = errors.New("phone number must be 10 digits")
	ErrPasswordTooWeak = errors.New("password must be at least 6 characters long")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
)

// Email matching is case-sensitive; the storage constraint compares the
// stored value verbatim, so no normalization happens here.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Phone struct {
	value string
}

func NewPhone(s string) (Phone, error) {
	s = strings.TrimSpace(s)
	if !phoneRegex.MatchString(s) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: s}, nil
}

func (p Phone) Value() string {
	return p.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < 6 {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: s}, nil
}

func (n Name) Value() string {
	return n.value
}
