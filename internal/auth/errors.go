package auth

// OIDCError is a failed login callback. RedirectURL points the browser at
// the error page describing it.
type OIDCError struct {
	RedirectURL string
	Message     string
}

func (e *OIDCError) Error() string {
	return e.Message
}
