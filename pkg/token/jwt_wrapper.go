package token

import "guidelight/pkg/config"

// Indirection so tests can swap in fakes.
var (
	GenerateJWTFunc = GenerateJWT
	ParseJWTFunc    = ParseJWT
)

// GenerateJWTWrapper issues a token with the member service as issuer.
func GenerateJWTWrapper(memberID, role string) (string, error) {
	return GenerateJWTFunc(memberID, role, config.EnvConfig.MemberService)
}

// ParseJWTWrapper parses a token through the swappable func.
func ParseJWTWrapper(t string) (*Claims, error) {
	return ParseJWTFunc(t)
}
