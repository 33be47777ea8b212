package session

import "recruit-console/internal/dto"

// Session is the authenticated state the console holds for the current
// login: the opaque bearer token plus the identity record from /auth/me.
// Either both are present or neither is.
type Session struct {
	Token    string       `json:"token"`
	Identity dto.Identity `json:"identity"`
}

// Durable store keys. Both entries live or die together: written on
// login, cleared on logout.
const (
	KeyToken    = "auth_token"
	KeyIdentity = "identity"
)
