package auth

// Gate guards mutating operations with a single shared admin secret. There
// are no sessions or tokens: every mutating request supplies the secret and
// is checked independently.
type Gate struct {
	secret string
}

// NewGate creates a gate for the configured secret. Config enforces a
// non-empty secret at boot.
func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Authorize reports whether the supplied secret matches the configured one.
// An empty supplied secret is always denied.
func (g *Gate) Authorize(supplied string) bool {
	return supplied != "" && supplied == g.secret
}
