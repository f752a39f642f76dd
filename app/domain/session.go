package domain

// Session is the process-wide authentication state. It is created empty on
// first launch, filled by login, updated by onboarding completion and cleared
// by logout. The snapshot persisted to disk covers User and Token only;
// hydration state is recomputed every process start.
type Session struct {
	User  *User  `json:"user,omitempty"`
	Token string `json:"token,omitempty"`
}

// Empty reports whether the session carries no credentials at all.
func (s Session) Empty() bool {
	return s.User == nil && s.Token == ""
}

// Consistent reports whether user and token are both present or both absent.
// Login writes both in one mutation, so an inconsistent snapshot indicates a
// broken session that the gate treats as logged out.
func (s Session) Consistent() bool {
	return (s.User == nil) == (s.Token == "")
}

// Authenticated reports whether the session holds a token and a well-formed
// user record. Malformed user records fail closed.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil && s.User.Validate() == nil
}
