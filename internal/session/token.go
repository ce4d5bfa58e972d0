package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// expired reports whether token carries an exp claim in the past. The claim
// is read without signature verification: the server stays the authority on
// validity, this only short-circuits restore calls guaranteed to fail.
// Tokens that are not parseable JWTs, or carry no exp claim, are treated as
// live and left to the server to judge.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
