package domain

// Form holds both login fields and the committed form validity.
// Valid only changes on Commit, which callers run after a quiet period.
type Form struct {
	Email    FieldState
	Password FieldState
	Valid    bool
}

// Field returns the state of f.
func (fm Form) Field(f Field) FieldState {
	if f == FieldPassword {
		return fm.Password
	}
	return fm.Email
}

func (fm Form) with(f Field, s FieldState) Form {
	if f == FieldPassword {
		fm.Password = s
	} else {
		fm.Email = s
	}
	return fm
}

// Input applies an input event to f. The bool reports whether the field's
// validity flipped.
func (fm Form) Input(f Field, v string) (Form, bool) {
	prev := fm.Field(f)
	next := prev.Input(f, v)
	return fm.with(f, next), next.IsValid != prev.IsValid
}

// Blur applies a focus-loss event to f. The bool reports whether the field's
// validity flipped.
func (fm Form) Blur(f Field) (Form, bool) {
	prev := fm.Field(f)
	next := prev.Blur(f)
	return fm.with(f, next), next.IsValid != prev.IsValid
}

// Commit recomputes the combined validity from both fields.
func (fm Form) Commit() Form {
	fm.Valid = fm.Email.IsValid && fm.Password.IsValid
	return fm
}

// Credentials returns the current raw values.
func (fm Form) Credentials() Credentials {
	return Credentials{Email: fm.Email.Value, Password: fm.Password.Value}
}
