package booking

import "sync"

// AdminSession is the process-wide authenticated/unauthenticated flag.
// It starts false, flips true only after an exact match against the
// configured admin password, and is never persisted: a restart always
// comes up logged out.  The credential is compared in plaintext with
// no hashing, no lockout and no rate limit.
type AdminSession struct {
	mu            sync.Mutex
	password      string
	authenticated bool
}

// NewAdminSession returns a logged-out session gated by the given
// credential.
func NewAdminSession(password string) *AdminSession {
	return &AdminSession{password: password}
}

// Login compares attempt against the configured credential.  On match
// the session becomes authenticated and true is returned; on mismatch
// the state is left untouched.
func (a *AdminSession) Login(attempt string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if attempt != a.password {
		return false
	}
	a.authenticated = true
	return true
}

// Logout unconditionally clears the session.
func (a *AdminSession) Logout() {
	a.mu.Lock()
	a.authenticated = false
	a.mu.Unlock()
}

// Authenticated reports the current session state.
func (a *AdminSession) Authenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.authenticated
}
