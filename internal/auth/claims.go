package auth

// UserClaims is the identity attached to every authenticated request. The
// chat gateway authenticates with the shared API key and forwards the acting
// user's platform id and role ids; service-to-service callers present a
// signed bearer token instead.
type UserClaims interface {
	UserID() string
	RoleIDs() []string
	Source() string
}

// APIKeyClaims carries the identity headers forwarded by the gateway.
type APIKeyClaims struct {
	UserIDValue  string
	RoleIDValues []string
}

func (c *APIKeyClaims) UserID() string    { return c.UserIDValue }
func (c *APIKeyClaims) RoleIDs() []string { return c.RoleIDValues }
func (c *APIKeyClaims) Source() string    { return "API_KEY" }

// TokenClaims carries the identity decoded from a bearer token.
type TokenClaims struct {
	UserIDValue  string
	RoleIDValues []string
}

func (c *TokenClaims) UserID() string    { return c.UserIDValue }
func (c *TokenClaims) RoleIDs() []string { return c.RoleIDValues }
func (c *TokenClaims) Source() string    { return "JWT" }
