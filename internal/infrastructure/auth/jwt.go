package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the two identifiers every authenticated request needs:
// who the caller is and which role they held when the token was minted.
// The role in the token is informational only; authorization re-reads
// the user's current role on every request.
type Claims struct {
	UserID uint `json:"userId"`
	RoleID uint `json:"roleId"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret   []byte
	expHours int
}

func NewJWTService(secret string, expHours int) *JWTService {
	return &JWTService{
		secret:   []byte(secret),
		expHours: expHours,
	}
}

func (s *JWTService) Generate(userID, roleID uint) (string, error) {
	now := time.Now().UTC()

	claims := &Claims{
		UserID: userID,
		RoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates the token, rejecting tokens signed with
// anything other than HMAC. Expiry is checked here, at presentation
// time; nothing tracks tokens server-side.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
