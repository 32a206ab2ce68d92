package security

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type JWTService struct {
	secret     []byte
	expiration time.Duration
}

func NewJWTService(secret string, expiration time.Duration) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

type userClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

func (s *JWTService) GenerateUserToken(userID string) (string, error) {
	now := time.Now()
	claims := userClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ParseUserToken verifies the signature and expiry and returns the user id.
func (s *JWTService) ParseUserToken(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &userClaims{}, s.keyFunc)
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*userClaims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}

// GenerateAdminToken signs a token whose subject is the configured admin
// credential pair. It carries no identity of its own: verification works
// only by recomputing the same subject.
func (s *JWTService) GenerateAdminToken(email, password string) (string, error) {
	claims := jwt.RegisteredClaims{Subject: email + password}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JWTService) VerifyAdminToken(token, email, password string) error {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, s.keyFunc)
	if err != nil {
		return err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid {
		return ErrInvalidToken
	}
	expected := email + password
	if subtle.ConstantTimeCompare([]byte(claims.Subject), []byte(expected)) != 1 {
		return ErrInvalidToken
	}
	return nil
}

func (s *JWTService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return s.secret, nil
}
