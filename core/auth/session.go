package auth

// Session is the per-client authentication state. A zero UserID means the
// client is anonymous; a populated one means the client authenticated as the
// given account with the given role.
type Session struct {
	UserID   int
	Username string
	Role     string
}

func (s Session) IsAuthenticated() bool {
	return s.UserID != 0
}
