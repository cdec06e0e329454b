package jwtx

// Signer turns claims into a compact JWT.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}
