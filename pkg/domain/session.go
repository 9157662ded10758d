package domain

// Persistence marker for the session flag.
const (
	MarkerKey   = "isLoggedIn"
	MarkerValue = "1"
)

// Session is the single durable bit of authentication state.
type Session struct {
	IsLoggedIn bool `json:"is_logged_in"`
}

// SessionFromMarker derives a Session from a stored marker lookup.
// Anything other than a present "1" is treated as logged out.
func SessionFromMarker(value string, ok bool) Session {
	return Session{IsLoggedIn: ok && value == MarkerValue}
}

// Credentials are the raw field values handed to login. They are not
// verified anywhere.
type Credentials struct {
	Email    string
	Password string
}
