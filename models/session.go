package models

import "time"

// Credentials are the user-supplied login inputs.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest asks the server for a fresh token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse is the wire shape of the login and refresh endpoints.
// ExpiresIn is the access-token lifetime in seconds.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Username     string `json:"username"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Session is the locally persisted credential set. ExpiresAt is computed
// from TokenResponse.ExpiresIn at the moment the tokens are stored; the
// token string itself is never decoded.
type Session struct {
	AccessToken  string
	RefreshToken string
	Username     string
	ExpiresAt    time.Time
}

// SessionFromTokenResponse builds a Session anchored at now.
func SessionFromTokenResponse(resp TokenResponse, now time.Time) Session {
	return Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		Username:     resp.Username,
		ExpiresAt:    now.Add(time.Duration(resp.ExpiresIn) * time.Second),
	}
}
