package token

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// CookieName is the cookie carrying the signed credential.
const CookieName = "token"

const tokenTTL = time.Hour

// Issuer signs identity payloads into time-limited HS256 tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer with the process token secret and the fixed
// one-hour expiry.
func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: tokenTTL}
}

// Issue signs the identity payload as JWT claims with iat/exp set.
func (i *Issuer) Issue(identity map[string]any) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	now := time.Now()
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(i.ttl).Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Cookie wraps a signed token in the credential cookie. HttpOnly keeps it
// away from page scripts; Secure keeps it off plaintext transport.
func (i *Issuer) Cookie(signed string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
	}
}
