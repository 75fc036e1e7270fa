package testutil

// FixedTokenGenerator returns the same run token every time.
//
// This enables deterministic CLI output and golden comparison: the same
// scenario played with the same FixedTokenGenerator produces byte-identical
// output. The production counterpart is cli.UUIDv7Generator.
//
// Thread-safety: FixedTokenGenerator is stateless and safe for concurrent use.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a fixed run-token generator. An empty token
// defaults to "test-run-default".
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = "test-run-default"
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed run token.
//
// Implements the cli.TokenGenerator interface.
func (g *FixedTokenGenerator) Generate() string {
	return g.token
}
