package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
)

const issuer = "flowledger"

var (
	TimeNow          = time.Now
	ErrTokenNotValid = errors.New("token is not valid")
	ErrTokenExpired  = errors.New("token expired")
)

// Grant is what a share token lets its holder read.
type Grant struct {
	Kind    string
	Subject string
	TTL     time.Duration
}

// ShareClaims is the payload of a signed share token.
type ShareClaims struct {
	Kind string `json:"kind"`
	jwt.StandardClaims
}

type ShareIssuer struct {
	secret []byte
}

func NewShareIssuer(secret []byte) *ShareIssuer {
	return &ShareIssuer{secret: secret}
}

// Issue signs a fresh HS512 token for the grant.
func (s *ShareIssuer) Issue(grant Grant) (string, error) {
	now := TimeNow()
	claims := ShareClaims{
		Kind: grant.Kind,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   grant.Subject,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(grant.TTL).Unix(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign share token: %w", err)
	}
	return signed, nil
}

// Parse checks the signature, issuer and expiry of token against TimeNow.
func (s *ShareIssuer) Parse(token string) (ShareClaims, error) {
	var claims ShareClaims

	parser := &jwt.Parser{SkipClaimsValidation: true}
	parsed, err := parser.ParseWithClaims(token, &claims, s.key)
	if err != nil {
		return ShareClaims{}, fmt.Errorf("parse share token: %v: %w", err, ErrTokenNotValid)
	}
	if !parsed.Valid || claims.Issuer != issuer {
		return ShareClaims{}, ErrTokenNotValid
	}

	if claims.ExpiresAt != 0 && claims.ExpiresAt < TimeNow().Unix() {
		return ShareClaims{}, fmt.Errorf("share token expired at %v: %w",
			time.Unix(claims.ExpiresAt, 0).UTC(), ErrTokenExpired)
	}

	return claims, nil
}

func (s *ShareIssuer) key(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return s.secret, nil
}
