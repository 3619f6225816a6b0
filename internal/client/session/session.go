// Package session owns the client-side authentication state: the bearer
// token and the Anonymous/Authenticated gate derived from its presence.
//
// The token lives only in memory. It is set on a successful login, cleared
// on logout, and lost when the process exits. Nothing else in the client may
// hold a copy of it beyond the duration of a single call chain.
package session

// Session is the single holder of the bearer credential.
//
// The zero value is Anonymous. The only transition to Authenticated is
// SetToken with a non-empty token (successful login); the only transition
// back is Clear (logout). A failed request never changes the state.
type Session struct {
	token string
}

func New() *Session {
	return &Session{}
}

// SetToken stores the credential obtained from a successful login.
func (s *Session) SetToken(token string) {
	s.token = token
}

// Clear drops the credential, returning the session to Anonymous.
// Purely local: no endpoint is called.
func (s *Session) Clear() {
	s.token = ""
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	return s.token != ""
}

// AuthHeader derives the authorization headers for the current state:
// a bearer header when a token is held, an empty map otherwise. Every
// authenticated call must obtain its headers through this derivation.
func (s *Session) AuthHeader() map[string]string {
	return BearerHeader(s.token)
}

// BearerHeader is the single place the Authorization header is constructed.
// An empty token yields an empty map, never an empty header value.
func BearerHeader(token string) map[string]string {
	if token == "" {
		return map[string]string{}
	}
	return map[string]string{"Authorization": "Bearer " + token}
}
