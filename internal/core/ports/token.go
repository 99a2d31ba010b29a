package ports

// TokenIssuer produces a signed, time-bound token asserting the given
// subject's identity.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// TokenVerifier checks a token's signature and expiry and resolves the
// subject it was issued for. Verification is a pure computation; the subject
// is trusted once the signature check passes, with no store lookup.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
