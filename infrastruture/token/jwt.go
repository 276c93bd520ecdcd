// Package token issues and verifies the HMAC signed access tokens used by protected routes.
package token

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/dgrijalva/jwt-go"
)

var (
	ErrInvalidToken     = errors.New("invalid token")
	ErrUnexpectedMethod = errors.New("unexpected signing method")
	ErrWrongIssuer      = errors.New("token issued by another issuer")
)

// JwtService signs claims with a shared secret and stamps them with its issuer.
type JwtService struct {
	secretKey []byte
	issuer    string
}

var _ i.Tokenizer = &JwtService{}

// NewJwtService creates a JwtService for the given secret and issuer.
func NewJwtService(secretKey, issuer string) *JwtService {
	return &JwtService{
		secretKey: []byte(secretKey),
		issuer:    issuer,
	}
}

// Generate signs the claims, adding exp, iat and iss. Caller claims with the
// same keys are overwritten.
func (s *JwtService) Generate(claims map[string]interface{}, expTime time.Duration) (string, error) {
	now := time.Now().UTC()
	jwtClaims := make(jwt.MapClaims, len(claims)+3)
	for key, val := range claims {
		jwtClaims[key] = val
	}
	jwtClaims["exp"] = now.Add(expTime).Unix()
	jwtClaims["iat"] = now.Unix()
	jwtClaims["iss"] = s.issuer

	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims).SignedString(s.secretKey)
}

// Decode verifies the signature, expiry and issuer and returns the claims.
func (s *JwtService) Decode(tokenString string) (map[string]interface{}, error) {
	token, err := jwt.Parse(tokenString, s.signingKey)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if !claims.VerifyIssuer(s.issuer, true) {
		return nil, ErrWrongIssuer
	}

	return claims, nil
}

func (s *JwtService) signingKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrUnexpectedMethod
	}
	return s.secretKey, nil
}
