package domain

import (
	"strings"
	"unicode/utf8"
)

// minPasswordLen is the exclusive lower bound on trimmed password length.
const minPasswordLen = 6

// Field identifies one input of the login form.
type Field int

const (
	FieldEmail Field = iota
	FieldPassword
)

// String returns the field's label.
func (f Field) String() string {
	switch f {
	case FieldEmail:
		return "email"
	case FieldPassword:
		return "password"
	}
	return "unknown"
}

// EmailRule reports whether s looks like an email. Only the "@" is checked.
func EmailRule(s string) bool {
	return strings.Contains(s, "@")
}

// PasswordRule reports whether s is longer than six characters once trimmed.
func PasswordRule(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) > minPasswordLen
}

// Rule returns the validation rule for the field.
func (f Field) Rule() func(string) bool {
	if f == FieldPassword {
		return PasswordRule
	}
	return EmailRule
}

// FieldState is a field's raw value and its last evaluated validity.
// The zero value is a pristine, invalid, empty field.
type FieldState struct {
	Value   string
	IsValid bool
}

// Input replaces the value and re-evaluates it.
func (s FieldState) Input(f Field, v string) FieldState {
	return FieldState{Value: v, IsValid: f.Rule()(v)}
}

// Blur re-evaluates the current value without changing it.
func (s FieldState) Blur(f Field) FieldState {
	return FieldState{Value: s.Value, IsValid: f.Rule()(s.Value)}
}
